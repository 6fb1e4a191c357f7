package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/advisor"
	"balatro-spectator/internal/service/engine"
	"balatro-spectator/internal/service/input"
	"balatro-spectator/pkg/response"

	"github.com/gin-gonic/gin"
)

type classifyBody struct {
	Cards []model.Card `json:"cards" binding:"required"`
}

type scoreBody struct {
	HandType model.HandType `json:"handType"`
	Played   []model.Card   `json:"played" binding:"required"`
	Held     []model.Card   `json:"held"`
	Jokers   model.JokerSet `json:"jokers"`
}

type bestBody struct {
	Hand   []model.Card   `json:"hand" binding:"required"`
	Jokers model.JokerSet `json:"jokers"`
}

type batchBody struct {
	States []json.RawMessage `json:"states" binding:"required"`
}

// checkPlayed rejects plays larger than a hand can legally put down.
func checkPlayed(c *gin.Context, played []model.Card) bool {
	if len(played) > engine.MaxPlayedCards {
		response.Error(c, http.StatusBadRequest,
			fmt.Sprintf("at most %d cards can be played, got %d", engine.MaxPlayedCards, len(played)))
		return false
	}
	return true
}

func (h *Handler) ListHands(c *gin.Context) {
	response.Success(c, gin.H{"items": h.services.Searcher.Scorer().Levels().Entries()})
}

func (h *Handler) Classify(c *gin.Context) {
	var body classifyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !checkPlayed(c, body.Cards) {
		return
	}
	handType := h.services.Searcher.Classifier().Classify(body.Cards)
	response.Success(c, gin.H{"handType": handType})
}

// Score classifies the played cards itself when handType is omitted.
func (h *Handler) Score(c *gin.Context) {
	var body scoreBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !checkPlayed(c, body.Played) {
		return
	}
	handType := body.HandType
	if handType == "" {
		handType = h.services.Searcher.Classifier().Classify(body.Played)
	}
	result := h.services.Searcher.Scorer().Score(handType, body.Played, body.Held, body.Jokers)
	response.Success(c, gin.H{"handType": handType, "result": result})
}

func (h *Handler) Best(c *gin.Context) {
	var body bestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	best, err := h.services.Advisor.BestHand(c.Request.Context(), body.Hand, body.Jokers)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, best)
}

// Recommend takes the same document the terminal client loads from disk.
func (h *Handler) Recommend(c *gin.Context) {
	state, err := input.DecodeState(c.Request.Body)
	if err != nil {
		response.FromError(c, err)
		return
	}
	rec, err := h.services.Advisor.Recommend(c.Request.Context(), state)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rec)
}

func (h *Handler) RecommendBatch(c *gin.Context) {
	var body batchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	states := make([]advisor.GameState, 0, len(body.States))
	for i, raw := range body.States {
		state, err := input.DecodeState(bytes.NewReader(raw))
		if err != nil {
			response.Error(c, response.StatusOf(err), fmt.Sprintf("state %d: %v", i, err))
			return
		}
		states = append(states, state)
	}

	recs, err := h.services.Advisor.RecommendBatch(c.Request.Context(), states)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"items": recs})
}
