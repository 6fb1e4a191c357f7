package model

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	appErr "balatro-spectator/pkg/errors"
)

type JokerEffect string

const (
	EffectAddChips  JokerEffect = "add_chips"
	EffectAddMult   JokerEffect = "add_mult"
	EffectXMult     JokerEffect = "x_mult"
	EffectRetrigger JokerEffect = "retrigger"
)

func (e JokerEffect) Valid() bool {
	switch e {
	case EffectAddChips, EffectAddMult, EffectXMult, EffectRetrigger:
		return true
	}
	return false
}

// Joker is a single scoring modifier. Position is its slot left to right;
// effects apply in ascending position order.
type Joker struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Effect   JokerEffect `json:"type"`
	Value    float64     `json:"value"`
	Position int         `json:"position"`
}

func NewJoker(id, name string, effect JokerEffect, value float64, position int) (Joker, error) {
	j := Joker{ID: id, Name: name, Effect: effect, Value: value, Position: position}
	if err := j.Validate(); err != nil {
		return Joker{}, err
	}
	return j, nil
}

func (j Joker) Validate() error {
	if !j.Effect.Valid() {
		return fmt.Errorf("%w: %q has unknown effect %q", appErr.ErrInvalidJoker, j.ID, string(j.Effect))
	}
	if math.IsNaN(j.Value) || math.IsInf(j.Value, 0) {
		return fmt.Errorf("%w: %q has non-finite value", appErr.ErrInvalidJoker, j.ID)
	}
	if j.Position < 0 {
		return fmt.Errorf("%w: %q has negative position %d", appErr.ErrInvalidJoker, j.ID, j.Position)
	}
	return nil
}

// JokerSet is an ordered, read-only collection of jokers. The order is fixed
// at construction: ascending Position, ties kept in input order.
type JokerSet struct {
	jokers []Joker
}

func NewJokerSet(jokers ...Joker) JokerSet {
	if len(jokers) == 0 {
		return JokerSet{}
	}
	sorted := make([]Joker, len(jokers))
	copy(sorted, jokers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return JokerSet{jokers: sorted}
}

func (s JokerSet) Len() int { return len(s.jokers) }

func (s JokerSet) At(i int) Joker { return s.jokers[i] }

// Jokers returns a copy in application order.
func (s JokerSet) Jokers() []Joker {
	out := make([]Joker, len(s.jokers))
	copy(out, s.jokers)
	return out
}

func (s JokerSet) MarshalJSON() ([]byte, error) {
	if s.jokers == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.jokers)
}

func (s *JokerSet) UnmarshalJSON(data []byte) error {
	var jokers []Joker
	if err := json.Unmarshal(data, &jokers); err != nil {
		return fmt.Errorf("%w: %v", appErr.ErrInvalidJoker, err)
	}
	for _, j := range jokers {
		if err := j.Validate(); err != nil {
			return err
		}
	}
	*s = NewJokerSet(jokers...)
	return nil
}
