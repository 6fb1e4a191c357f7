package model

import (
	"encoding/json"
	"fmt"
	"strings"

	appErr "balatro-spectator/pkg/errors"
)

// Rank tokens as they appear in game text: "2".."10", "J", "Q", "K", "A".
type Rank string

const (
	Rank2     Rank = "2"
	Rank3     Rank = "3"
	Rank4     Rank = "4"
	Rank5     Rank = "5"
	Rank6     Rank = "6"
	Rank7     Rank = "7"
	Rank8     Rank = "8"
	Rank9     Rank = "9"
	Rank10    Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankAce   Rank = "A"
)

// rankValues orders ranks for hand classification; the ace is high (14) and
// only counts as low inside the A-2-3-4-5 straight.
var rankValues = map[Rank]int{
	Rank2: 2, Rank3: 3, Rank4: 4, Rank5: 5, Rank6: 6, Rank7: 7, Rank8: 8,
	Rank9: 9, Rank10: 10, RankJack: 11, RankQueen: 12, RankKing: 13, RankAce: 14,
}

// Value returns the numeric rank (2..14) or 0 for an unknown token.
func (r Rank) Value() int {
	return rankValues[r]
}

// Chips is the chip value a scored card contributes: face cards 10, ace 11.
func (r Rank) Chips() int {
	v := r.Value()
	switch {
	case v == 0:
		return 0
	case v == 14:
		return 11
	case v > 10:
		return 10
	default:
		return v
	}
}

func (r Rank) Valid() bool {
	_, ok := rankValues[r]
	return ok
}

type Suit string

const (
	SuitHearts   Suit = "Hearts"
	SuitDiamonds Suit = "Diamonds"
	SuitClubs    Suit = "Clubs"
	SuitSpades   Suit = "Spades"
)

func (s Suit) Valid() bool {
	switch s {
	case SuitHearts, SuitDiamonds, SuitClubs, SuitSpades:
		return true
	}
	return false
}

// Symbol returns the suit glyph (♥, ♦, ♣, ♠).
func (s Suit) Symbol() string {
	switch s {
	case SuitHearts:
		return "♥"
	case SuitDiamonds:
		return "♦"
	case SuitClubs:
		return "♣"
	case SuitSpades:
		return "♠"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == SuitHearts || s == SuitDiamonds
}

type Enhancement string

const (
	EnhancementNone  Enhancement = ""
	EnhancementBonus Enhancement = "Bonus"
	EnhancementMult  Enhancement = "Mult"
	EnhancementWild  Enhancement = "Wild"
	EnhancementGlass Enhancement = "Glass"
	EnhancementSteel Enhancement = "Steel"
	EnhancementStone Enhancement = "Stone"
	EnhancementLucky Enhancement = "Lucky"
)

func (e Enhancement) Valid() bool {
	switch e {
	case EnhancementNone, EnhancementBonus, EnhancementMult, EnhancementWild,
		EnhancementGlass, EnhancementSteel, EnhancementStone, EnhancementLucky:
		return true
	}
	return false
}

type Edition string

const (
	EditionNone        Edition = ""
	EditionFoil        Edition = "Foil"
	EditionHolographic Edition = "Holographic"
	EditionPolychrome  Edition = "Polychrome"
	EditionNegative    Edition = "Negative"
)

func (e Edition) Valid() bool {
	switch e {
	case EditionNone, EditionFoil, EditionHolographic, EditionPolychrome, EditionNegative:
		return true
	}
	return false
}

// Seal is carried on cards but has no scoring effect yet.
type Seal string

const (
	SealNone   Seal = ""
	SealRed    Seal = "Red"
	SealBlue   Seal = "Blue"
	SealGold   Seal = "Gold"
	SealPurple Seal = "Purple"
)

func (s Seal) Valid() bool {
	switch s {
	case SealNone, SealRed, SealBlue, SealGold, SealPurple:
		return true
	}
	return false
}

// Card is an immutable playing card. Build it with NewCard so that an unknown
// rank or suit is rejected at the boundary instead of scoring zero chips later.
type Card struct {
	rank        Rank
	suit        Suit
	enhancement Enhancement
	edition     Edition
	seal        Seal
}

type CardOption func(*Card)

func WithEnhancement(e Enhancement) CardOption {
	return func(c *Card) { c.enhancement = e }
}

func WithEdition(e Edition) CardOption {
	return func(c *Card) { c.edition = e }
}

func WithSeal(s Seal) CardOption {
	return func(c *Card) { c.seal = s }
}

func NewCard(rank Rank, suit Suit, opts ...CardOption) (Card, error) {
	c := Card{rank: rank, suit: suit}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// MustCard is NewCard for literals known to be valid; it panics otherwise.
func MustCard(rank Rank, suit Suit, opts ...CardOption) Card {
	c, err := NewCard(rank, suit, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) validate() error {
	if !c.rank.Valid() {
		return fmt.Errorf("%w: unknown rank %q", appErr.ErrInvalidCard, string(c.rank))
	}
	if !c.suit.Valid() {
		return fmt.Errorf("%w: unknown suit %q", appErr.ErrInvalidCard, string(c.suit))
	}
	if !c.enhancement.Valid() {
		return fmt.Errorf("%w: unknown enhancement %q", appErr.ErrInvalidCard, string(c.enhancement))
	}
	if !c.edition.Valid() {
		return fmt.Errorf("%w: unknown edition %q", appErr.ErrInvalidCard, string(c.edition))
	}
	if !c.seal.Valid() {
		return fmt.Errorf("%w: unknown seal %q", appErr.ErrInvalidCard, string(c.seal))
	}
	return nil
}

func (c Card) Rank() Rank               { return c.rank }
func (c Card) Suit() Suit               { return c.suit }
func (c Card) Enhancement() Enhancement { return c.enhancement }
func (c Card) Edition() Edition         { return c.edition }
func (c Card) Seal() Seal               { return c.seal }

// BaseChips is the chip value added when the card is scored. Stone cards
// always give 50 regardless of rank.
func (c Card) BaseChips() int {
	if c.enhancement == EnhancementStone {
		return 50
	}
	return c.rank.Chips()
}

// String renders the card in the text form accepted by ParseCard,
// e.g. "Q of Hearts [Foil]".
func (c Card) String() string {
	var b strings.Builder
	b.WriteString(string(c.rank))
	b.WriteString(" of ")
	b.WriteString(string(c.suit))
	for _, tag := range []string{string(c.enhancement), string(c.edition), string(c.seal)} {
		if tag == "" {
			continue
		}
		b.WriteString(" [")
		b.WriteString(tag)
		b.WriteString("]")
	}
	return b.String()
}

// Short renders rank and suit glyph only, e.g. "Q♥".
func (c Card) Short() string {
	return string(c.rank) + c.suit.Symbol()
}

type cardObject struct {
	Rank        Rank        `json:"rank"`
	Suit        Suit        `json:"suit"`
	Enhancement Enhancement `json:"enhancement,omitempty"`
	Edition     Edition     `json:"edition,omitempty"`
	Seal        Seal        `json:"seal,omitempty"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either the text form ("A of Spades [Steel]") or an
// object with rank/suit/enhancement/edition/seal fields.
func (c *Card) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseCard(text)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var obj cardObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %v", appErr.ErrInvalidCard, err)
	}
	parsed, err := NewCard(obj.Rank, obj.Suit,
		WithEnhancement(obj.Enhancement),
		WithEdition(obj.Edition),
		WithSeal(obj.Seal),
	)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
