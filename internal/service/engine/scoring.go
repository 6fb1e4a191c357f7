package engine

import (
	"math"

	"balatro-spectator/internal/model"
)

// Scorer runs the five-stage scoring pipeline against a level table:
// base level, played cards, held cards, jokers, then floor and rounding.
type Scorer struct {
	levels LevelTable
}

// NewScorer copies levels; a nil table means DefaultLevels.
func NewScorer(levels LevelTable) *Scorer {
	if levels == nil {
		levels = defaultLevels
	}
	return &Scorer{levels: levels.Clone()}
}

// Levels returns a copy of the table this scorer uses.
func (s *Scorer) Levels() LevelTable {
	return s.levels.Clone()
}

var defaultScorer = NewScorer(nil)

// Score scores a play with the default level table.
func Score(handType model.HandType, played, held []model.Card, jokers model.JokerSet) model.ScoreResult {
	return defaultScorer.Score(handType, played, held, jokers)
}

// tally is the running chips/mult pair; values stay fractional until finalize.
type tally struct {
	chips float64
	mult  float64
}

func (s *Scorer) Score(handType model.HandType, played, held []model.Card, jokers model.JokerSet) model.ScoreResult {
	base := s.levels.Base(handType)
	t := tally{chips: float64(base.Chips), mult: float64(base.Mult)}

	for _, c := range played {
		t.applyPlayed(c)
	}
	for _, c := range held {
		t.applyHeld(c)
	}
	for i := 0; i < jokers.Len(); i++ {
		t.applyJoker(jokers.At(i))
	}
	return t.finalize()
}

// applyPlayed adds the card's chips, then its enhancement, then its edition.
func (t *tally) applyPlayed(c model.Card) {
	t.chips += float64(c.BaseChips())

	switch c.Enhancement() {
	case model.EnhancementBonus:
		t.chips += 30
	case model.EnhancementMult:
		t.mult += 4
	case model.EnhancementGlass:
		t.mult *= 2
	}

	switch c.Edition() {
	case model.EditionFoil:
		t.chips += 50
	case model.EditionHolographic:
		t.mult += 10
	case model.EditionPolychrome:
		t.mult *= 1.5
	}
}

func (t *tally) applyHeld(c model.Card) {
	if c.Enhancement() == model.EnhancementSteel {
		t.mult *= 1.5
	}
}

func (t *tally) applyJoker(j model.Joker) {
	switch j.Effect {
	case model.EffectAddChips:
		t.chips += j.Value
	case model.EffectAddMult:
		t.mult += j.Value
	case model.EffectXMult:
		t.mult *= j.Value
	case model.EffectRetrigger:
		// no scoring effect yet
	}
}

// finalize floors chips at 0 and mult at 1, rounds each half-to-even, and
// multiplies the rounded values.
func (t tally) finalize() model.ScoreResult {
	chips := math.RoundToEven(math.Max(t.chips, 0))
	mult := math.RoundToEven(math.Max(t.mult, 1))
	c, m := int64(chips), int64(mult)
	return model.ScoreResult{Chips: c, Mult: m, Total: c * m}
}
