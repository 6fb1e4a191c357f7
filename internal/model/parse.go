package model

import (
	"fmt"
	"strings"

	appErr "balatro-spectator/pkg/errors"
)

var rankAliases = map[string]Rank{
	"2": Rank2, "3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6, "7": Rank7,
	"8": Rank8, "9": Rank9, "10": Rank10, "T": Rank10,
	"J": RankJack, "JACK": RankJack,
	"Q": RankQueen, "QUEEN": RankQueen,
	"K": RankKing, "KING": RankKing,
	"A": RankAce, "ACE": RankAce,
}

var suitAliases = map[string]Suit{
	"HEARTS": SuitHearts, "HEART": SuitHearts, "H": SuitHearts, "♥": SuitHearts,
	"DIAMONDS": SuitDiamonds, "DIAMOND": SuitDiamonds, "D": SuitDiamonds, "♦": SuitDiamonds,
	"CLUBS": SuitClubs, "CLUB": SuitClubs, "C": SuitClubs, "♣": SuitClubs,
	"SPADES": SuitSpades, "SPADE": SuitSpades, "S": SuitSpades, "♠": SuitSpades,
}

var (
	enhancementNames = []Enhancement{
		EnhancementBonus, EnhancementMult, EnhancementWild, EnhancementGlass,
		EnhancementSteel, EnhancementStone, EnhancementLucky,
	}
	editionNames = []Edition{EditionFoil, EditionHolographic, EditionPolychrome, EditionNegative}
	sealNames    = []Seal{SealRed, SealBlue, SealGold, SealPurple}
)

// ParseCard reads the game's text form "Rank of Suit [Tag] [Tag]...".
// Tags are matched case-insensitively against enhancements, then editions,
// then seals, so "Mult" is always the enhancement.
func ParseCard(s string) (Card, error) {
	text := strings.TrimSpace(s)
	head := text
	var tags []string
	if i := strings.IndexByte(text, '['); i >= 0 {
		head = strings.TrimSpace(text[:i])
		var err error
		tags, err = splitTags(text[i:])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", appErr.ErrInvalidCard, s, err)
		}
	}

	parts := strings.Fields(head)
	if len(parts) != 3 || !strings.EqualFold(parts[1], "of") {
		return Card{}, fmt.Errorf("%w: %q is not \"Rank of Suit\"", appErr.ErrInvalidCard, s)
	}
	rank, ok := rankAliases[strings.ToUpper(parts[0])]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", appErr.ErrInvalidCard, parts[0])
	}
	suit, ok := suitAliases[strings.ToUpper(parts[2])]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q", appErr.ErrInvalidCard, parts[2])
	}

	opts := make([]CardOption, 0, len(tags))
	for _, tag := range tags {
		opt, err := tagOption(tag)
		if err != nil {
			return Card{}, err
		}
		opts = append(opts, opt)
	}
	return NewCard(rank, suit, opts...)
}

func splitTags(s string) ([]string, error) {
	var tags []string
	rest := strings.TrimSpace(s)
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("unclosed tag")
		}
		tag := strings.TrimSpace(rest[1:end])
		if tag != "" {
			tags = append(tags, tag)
		}
		rest = strings.TrimSpace(rest[end+1:])
	}
	return tags, nil
}

func tagOption(tag string) (CardOption, error) {
	for _, e := range enhancementNames {
		if strings.EqualFold(tag, string(e)) {
			return WithEnhancement(e), nil
		}
	}
	for _, e := range editionNames {
		if strings.EqualFold(tag, string(e)) {
			return WithEdition(e), nil
		}
	}
	for _, s := range sealNames {
		if strings.EqualFold(tag, string(s)) {
			return WithSeal(s), nil
		}
	}
	return nil, fmt.Errorf("%w: unknown modifier %q", appErr.ErrInvalidCard, tag)
}

// ParseCards parses each entry with ParseCard and stops at the first failure.
func ParseCards(texts []string) ([]Card, error) {
	cards := make([]Card, 0, len(texts))
	for i, t := range texts {
		c, err := ParseCard(t)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
