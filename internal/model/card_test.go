package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"balatro-spectator/internal/model"
	appErr "balatro-spectator/pkg/errors"
)

func TestNewCardRejectsUnknownTokens(t *testing.T) {
	cases := []struct {
		name string
		rank model.Rank
		suit model.Suit
		opts []model.CardOption
	}{
		{name: "rank", rank: "1", suit: model.SuitHearts},
		{name: "suit", rank: model.RankAce, suit: "Stars"},
		{name: "enhancement", rank: model.RankAce, suit: model.SuitHearts, opts: []model.CardOption{model.WithEnhancement("Gold")}},
		{name: "edition", rank: model.RankAce, suit: model.SuitHearts, opts: []model.CardOption{model.WithEdition("Shiny")}},
		{name: "seal", rank: model.RankAce, suit: model.SuitHearts, opts: []model.CardOption{model.WithSeal("Green")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewCard(tc.rank, tc.suit, tc.opts...)
			if !errors.Is(err, appErr.ErrInvalidCard) {
				t.Fatalf("expected ErrInvalidCard, got %v", err)
			}
		})
	}
}

func TestBaseChips(t *testing.T) {
	cases := []struct {
		card model.Card
		want int
	}{
		{model.MustCard(model.Rank2, model.SuitClubs), 2},
		{model.MustCard(model.Rank10, model.SuitClubs), 10},
		{model.MustCard(model.RankJack, model.SuitClubs), 10},
		{model.MustCard(model.RankQueen, model.SuitClubs), 10},
		{model.MustCard(model.RankKing, model.SuitClubs), 10},
		{model.MustCard(model.RankAce, model.SuitClubs), 11},
		{model.MustCard(model.Rank3, model.SuitClubs, model.WithEnhancement(model.EnhancementStone)), 50},
	}
	for _, tc := range cases {
		if got := tc.card.BaseChips(); got != tc.want {
			t.Fatalf("expected %s to give %d chips, got %d", tc.card, tc.want, got)
		}
	}
}

func TestParseCard(t *testing.T) {
	card, err := model.ParseCard("q of hearts [foil] [Steel] [Gold]")
	if err != nil {
		t.Fatalf("expected card to parse, got %v", err)
	}
	if card.Rank() != model.RankQueen || card.Suit() != model.SuitHearts {
		t.Fatalf("expected Q of Hearts, got %s", card)
	}
	if card.Enhancement() != model.EnhancementSteel {
		t.Fatalf("expected Steel enhancement, got %q", card.Enhancement())
	}
	if card.Edition() != model.EditionFoil {
		t.Fatalf("expected Foil edition, got %q", card.Edition())
	}
	if card.Seal() != model.SealGold {
		t.Fatalf("expected Gold seal, got %q", card.Seal())
	}
	if got := card.String(); got != "Q of Hearts [Steel] [Foil] [Gold]" {
		t.Fatalf("unexpected canonical form %q", got)
	}

	again, err := model.ParseCard(card.String())
	if err != nil || again != card {
		t.Fatalf("expected canonical form to parse back to the same card, got %v (%v)", again, err)
	}
}

func TestParseCardErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"Ace Hearts",
		"1 of Hearts",
		"A of Stars",
		"A of Hearts [Shiny]",
		"A of Hearts [Foil",
	} {
		if _, err := model.ParseCard(text); !errors.Is(err, appErr.ErrInvalidCard) {
			t.Fatalf("expected ErrInvalidCard for %q, got %v", text, err)
		}
	}
}

func TestCardJSON(t *testing.T) {
	var cards []model.Card
	payload := `["10 of Spades [Bonus]", {"rank":"A","suit":"Hearts","edition":"Polychrome"}]`
	if err := json.Unmarshal([]byte(payload), &cards); err != nil {
		t.Fatalf("expected cards to decode, got %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Enhancement() != model.EnhancementBonus || cards[1].Edition() != model.EditionPolychrome {
		t.Fatalf("modifiers lost while decoding: %v", cards)
	}

	out, err := json.Marshal(cards[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"A of Hearts [Polychrome]"` {
		t.Fatalf("unexpected encoding %s", out)
	}

	var bad model.Card
	if err := json.Unmarshal([]byte(`{"rank":"Z","suit":"Hearts"}`), &bad); !errors.Is(err, appErr.ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}
