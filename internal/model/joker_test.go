package model_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"balatro-spectator/internal/model"
	appErr "balatro-spectator/pkg/errors"
)

func TestJokerSetOrdersByPositionStably(t *testing.T) {
	set := model.NewJokerSet(
		model.Joker{ID: "c", Effect: model.EffectXMult, Value: 2, Position: 2},
		model.Joker{ID: "a", Effect: model.EffectAddMult, Value: 4, Position: 0},
		model.Joker{ID: "b1", Effect: model.EffectAddChips, Value: 10, Position: 1},
		model.Joker{ID: "b2", Effect: model.EffectAddChips, Value: 20, Position: 1},
	)

	want := []string{"a", "b1", "b2", "c"}
	if set.Len() != len(want) {
		t.Fatalf("expected %d jokers, got %d", len(want), set.Len())
	}
	for i, id := range want {
		if got := set.At(i).ID; got != id {
			t.Fatalf("expected joker %d to be %s, got %s", i, id, got)
		}
	}
}

func TestJokerSetIsolatedFromCaller(t *testing.T) {
	input := []model.Joker{{ID: "a", Effect: model.EffectAddMult, Value: 4}}
	set := model.NewJokerSet(input...)
	input[0].Value = 100

	out := set.Jokers()
	out[0].Value = 200

	if set.At(0).Value != 4 {
		t.Fatalf("expected set to keep its own copy, got value %v", set.At(0).Value)
	}
}

func TestJokerValidate(t *testing.T) {
	if _, err := model.NewJoker("x", "X", "double", 1, 0); !errors.Is(err, appErr.ErrInvalidJoker) {
		t.Fatalf("expected ErrInvalidJoker for unknown effect, got %v", err)
	}
	if _, err := model.NewJoker("x", "X", model.EffectXMult, math.NaN(), 0); !errors.Is(err, appErr.ErrInvalidJoker) {
		t.Fatalf("expected ErrInvalidJoker for NaN value, got %v", err)
	}
	if _, err := model.NewJoker("x", "X", model.EffectXMult, 1.5, -1); !errors.Is(err, appErr.ErrInvalidJoker) {
		t.Fatalf("expected ErrInvalidJoker for negative position, got %v", err)
	}
	if _, err := model.NewJoker("x", "X", model.EffectRetrigger, 0, 3); err != nil {
		t.Fatalf("expected retrigger joker to be valid, got %v", err)
	}
}

func TestJokerSetJSON(t *testing.T) {
	var set model.JokerSet
	payload := `[{"id":"b","type":"x_mult","value":1.5,"position":1},{"id":"a","type":"add_mult","value":4,"position":0}]`
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		t.Fatalf("expected joker set to decode, got %v", err)
	}
	if set.At(0).ID != "a" {
		t.Fatalf("expected decoded set sorted by position, got %s first", set.At(0).ID)
	}

	if err := json.Unmarshal([]byte(`[{"id":"z","type":"steal"}]`), &set); !errors.Is(err, appErr.ErrInvalidJoker) {
		t.Fatalf("expected ErrInvalidJoker, got %v", err)
	}

	empty, err := json.Marshal(model.JokerSet{})
	if err != nil || string(empty) != "[]" {
		t.Fatalf("expected empty set to encode as [], got %s (%v)", empty, err)
	}
}
