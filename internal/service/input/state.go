package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/advisor"
	appErr "balatro-spectator/pkg/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// stateDocument is the on-disk shape of a game state. Pointer fields tell an
// absent key apart from an explicit zero.
type stateDocument struct {
	Ante          *int               `json:"ante" validate:"omitempty,gte=0"`
	BlindType     string             `json:"blind_type"`
	Money         int                `json:"money"`
	RequiredScore *int64             `json:"required_score" validate:"omitempty,gte=0"`
	CurrentScore  int64              `json:"current_score" validate:"gte=0"`
	HandsLeft     *int               `json:"hands_left" validate:"omitempty,gte=0"`
	DiscardsLeft  *int               `json:"discards_left" validate:"omitempty,gte=0"`
	Hand          []string           `json:"hand" validate:"dive,required"`
	Deck          []string           `json:"deck" validate:"dive,required"`
	Jokers        []jokerDocument    `json:"jokers" validate:"dive"`
	Consumables   []string           `json:"consumables"`
	ShopItems     []advisor.ShopItem `json:"shop_items" validate:"dive"`
}

type jokerDocument struct {
	ID    string  `json:"id" validate:"required"`
	Name  string  `json:"name"`
	Type  string  `json:"type" validate:"required,oneof=add_chips add_mult x_mult retrigger"`
	Value float64 `json:"value"`
}

// DecodeState reads one JSON game state. Missing fields fall back to the
// opening-state defaults, except money which defaults to 0. Jokers take their
// position from array order.
func DecodeState(r io.Reader) (advisor.GameState, error) {
	var doc stateDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return advisor.GameState{}, fmt.Errorf("%w: %v", appErr.ErrInvalidState, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return advisor.GameState{}, fmt.Errorf("%w: %s", appErr.ErrInvalidState, describe(err))
	}
	return doc.toState()
}

// LoadState reads a game state file from disk.
func LoadState(path string) (advisor.GameState, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return advisor.GameState{}, fmt.Errorf("%w: %s", appErr.ErrStateNotFound, path)
		}
		return advisor.GameState{}, err
	}
	defer f.Close()

	return DecodeState(f)
}

func (d *stateDocument) toState() (advisor.GameState, error) {
	state := advisor.NewGameState()
	state.Money = d.Money
	state.CurrentScore = d.CurrentScore
	state.Consumables = d.Consumables
	state.ShopItems = d.ShopItems
	if d.Ante != nil {
		state.Ante = *d.Ante
	}
	if d.BlindType != "" {
		state.BlindType = d.BlindType
	}
	if d.RequiredScore != nil {
		state.RequiredScore = *d.RequiredScore
	}
	if d.HandsLeft != nil {
		state.HandsLeft = *d.HandsLeft
	}
	if d.DiscardsLeft != nil {
		state.DiscardsLeft = *d.DiscardsLeft
	}

	var err error
	if state.Hand, err = model.ParseCards(d.Hand); err != nil {
		return advisor.GameState{}, fmt.Errorf("%w: hand: %v", appErr.ErrInvalidState, err)
	}
	if state.Deck, err = model.ParseCards(d.Deck); err != nil {
		return advisor.GameState{}, fmt.Errorf("%w: deck: %v", appErr.ErrInvalidState, err)
	}

	jokers := make([]model.Joker, 0, len(d.Jokers))
	for i, j := range d.Jokers {
		joker, err := model.NewJoker(j.ID, j.Name, model.JokerEffect(j.Type), j.Value, i)
		if err != nil {
			return advisor.GameState{}, fmt.Errorf("%w: %v", appErr.ErrInvalidState, err)
		}
		jokers = append(jokers, joker)
	}
	state.Jokers = model.NewJokerSet(jokers...)
	return state, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
