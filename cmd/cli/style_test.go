package main

import (
	"strings"
	"testing"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/advisor"

	"github.com/pterm/pterm"
)

func TestRecommendationText(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	rec := &advisor.Recommendation{
		Action:        advisor.ActionPlay,
		HandType:      model.HandPair,
		Cards:         []model.Card{model.MustCard(model.RankKing, model.SuitHearts), model.MustCard(model.RankKing, model.SuitSpades, model.WithEdition(model.EditionFoil))},
		ExpectedScore: 60,
		Reason:        "Highest scoring hand available.",
	}
	text := recommendationText(rec)

	for _, want := range []string{"ACTION: PLAY", "HAND: Pair", "CARDS: K♥, K♠*", "EXPECTED: 60", "REASON: Highest scoring hand available."} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in %q", want, text)
		}
	}
}

func TestRecommendationTextShop(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	rec := &advisor.Recommendation{
		Action: advisor.ActionBuy,
		Item:   &advisor.ShopItem{Name: "Jolly Joker", Type: "Joker", Cost: 3},
		Reason: "Affordable Joker that fits current budget.",
	}
	text := recommendationText(rec)
	if strings.Contains(text, "HAND:") {
		t.Fatalf("expected no hand line for a shop action: %q", text)
	}
	if !strings.Contains(text, "ITEM: Jolly Joker (3)") {
		t.Fatalf("expected item line in %q", text)
	}
}
