package advisor

import (
	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/engine"
)

type Action string

const (
	ActionPlay Action = "play"
	ActionBuy  Action = "buy"
	ActionSkip Action = "skip"
	ActionWait Action = "wait"
)

type ShopItem struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	Cost int    `json:"cost" validate:"gte=0"`
}

// GameState is one observed moment of a run: the current hand during a round,
// or the shop between rounds.
type GameState struct {
	Ante          int            `json:"ante"`
	BlindType     string         `json:"blindType"`
	Money         int            `json:"money"`
	Jokers        model.JokerSet `json:"jokers"`
	Consumables   []string       `json:"consumables"`
	Hand          []model.Card   `json:"hand"`
	Deck          []model.Card   `json:"deck"`
	HandsLeft     int            `json:"handsLeft"`
	DiscardsLeft  int            `json:"discardsLeft"`
	RequiredScore int64          `json:"requiredScore"`
	CurrentScore  int64          `json:"currentScore"`
	ShopItems     []ShopItem     `json:"shopItems"`
}

// NewGameState returns the opening state of a run before anything is observed.
func NewGameState() GameState {
	return GameState{
		Ante:          1,
		BlindType:     "Small Blind",
		Money:         4,
		HandsLeft:     4,
		DiscardsLeft:  3,
		RequiredScore: 300,
	}
}

type Recommendation struct {
	ID            string             `json:"id"`
	Action        Action             `json:"action"`
	HandType      model.HandType     `json:"handType,omitempty"`
	Cards         []model.Card       `json:"cards,omitempty"`
	ExpectedScore int64              `json:"expectedScore,omitempty"`
	Result        *model.ScoreResult `json:"result,omitempty"`
	Item          *ShopItem          `json:"item,omitempty"`
	Reason        string             `json:"reason"`
	Evaluations   int                `json:"evaluations,omitempty"`
	Cached        bool               `json:"cached,omitempty"`
}

// BestResult is a search outcome plus whether it came from the cache.
type BestResult struct {
	engine.BestHand
	Cached bool `json:"cached"`
}
