package engine_test

import (
	"testing"

	"balatro-spectator/internal/model"
)

func cards(t *testing.T, texts ...string) []model.Card {
	t.Helper()

	out, err := model.ParseCards(texts)
	if err != nil {
		t.Fatalf("failed to parse cards %v: %v", texts, err)
	}
	return out
}

func joker(t *testing.T, id string, effect model.JokerEffect, value float64, position int) model.Joker {
	t.Helper()

	j, err := model.NewJoker(id, id, effect, value, position)
	if err != nil {
		t.Fatalf("failed to build joker %s: %v", id, err)
	}
	return j
}
