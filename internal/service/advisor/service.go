package advisor

import (
	"context"
	"fmt"
	"time"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/engine"
	appErr "balatro-spectator/pkg/errors"
	"balatro-spectator/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	MaxHandSize      int
	CacheTTL         time.Duration
	BatchConcurrency int
	MaxBatchSize     int
}

func defaultConfig() Config {
	return Config{
		MaxHandSize:      12,
		CacheTTL:         10 * time.Minute,
		BatchConcurrency: 4,
		MaxBatchSize:     64,
	}
}

func (c Config) withDefaults() Config {
	def := defaultConfig()
	if c.MaxHandSize <= 0 {
		c.MaxHandSize = def.MaxHandSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.BatchConcurrency <= 0 {
		c.BatchConcurrency = def.BatchConcurrency
	}
	if c.MaxBatchSize <= 0 {
		c.MaxBatchSize = def.MaxBatchSize
	}
	return c
}

type Service struct {
	searcher *engine.Searcher
	rdb      *redis.Client
	cfg      Config

	levelsKey string
}

// NewService builds the advisor. rdb may be nil, which disables caching; zero
// Config fields take their defaults.
func NewService(searcher *engine.Searcher, rdb *redis.Client, cfg Config) *Service {
	if searcher == nil {
		searcher = engine.NewSearcher(nil, nil)
	}
	return &Service{
		searcher:  searcher,
		rdb:       rdb,
		cfg:       cfg.withDefaults(),
		levelsKey: levelsFingerprint(searcher.Scorer().Levels()),
	}
}

func (s *Service) Searcher() *engine.Searcher { return s.searcher }

func (s *Service) Config() Config { return s.cfg }

// BestHand runs the guarded, cached best-hand search.
func (s *Service) BestHand(ctx context.Context, hand []model.Card, jokers model.JokerSet) (*BestResult, error) {
	if len(hand) > s.cfg.MaxHandSize {
		return nil, fmt.Errorf("%w: %d cards, limit %d", appErr.ErrHandTooLarge, len(hand), s.cfg.MaxHandSize)
	}

	key := s.bestKey(hand, jokers)
	if cached, err := s.loadBest(ctx, key); err == nil {
		return &BestResult{BestHand: *cached, Cached: true}, nil
	} else if err != appErr.ErrCacheMiss {
		logger.Log.Warn("best hand cache read failed", zap.String("key", key), zap.Error(err))
	}

	best := s.searcher.Search(hand, jokers)
	if err := s.saveBest(ctx, key, &best); err != nil {
		logger.Log.Warn("best hand cache write failed", zap.String("key", key), zap.Error(err))
	}
	return &BestResult{BestHand: best}, nil
}

// Recommend decides the next action. A state with cards in hand is mid-round
// and gets a play; otherwise the shop is checked; otherwise there is nothing to do.
func (s *Service) Recommend(ctx context.Context, state GameState) (*Recommendation, error) {
	var (
		rec *Recommendation
		err error
	)
	switch {
	case len(state.Hand) > 0:
		rec, err = s.recommendPlay(ctx, state)
	case len(state.ShopItems) > 0:
		rec = recommendShop(state)
	default:
		rec = &Recommendation{
			Action: ActionWait,
			Reason: "No actionable state detected (no hand, no shop).",
		}
	}
	if err != nil {
		return nil, err
	}
	rec.ID = uuid.NewString()

	logger.Log.Debug("recommendation",
		zap.String("id", rec.ID),
		zap.String("action", string(rec.Action)),
		zap.String("handType", string(rec.HandType)),
		zap.Int64("expectedScore", rec.ExpectedScore),
		zap.Bool("cached", rec.Cached),
	)
	return rec, nil
}

func (s *Service) recommendPlay(ctx context.Context, state GameState) (*Recommendation, error) {
	best, err := s.BestHand(ctx, state.Hand, state.Jokers)
	if err != nil {
		return nil, err
	}

	result := best.Result
	remaining := state.RequiredScore - state.CurrentScore
	reason := "Highest scoring hand available."
	if result.Total >= remaining {
		reason = fmt.Sprintf("This hand will complete the blind (%d >= %d).", result.Total, remaining)
	}

	return &Recommendation{
		Action:        ActionPlay,
		HandType:      best.HandType,
		Cards:         best.Cards,
		ExpectedScore: result.Total,
		Result:        &result,
		Reason:        reason,
		Evaluations:   best.Evaluations,
		Cached:        best.Cached,
	}, nil
}

func recommendShop(state GameState) *Recommendation {
	for _, item := range state.ShopItems {
		if item.Cost <= state.Money && item.Type == "Joker" {
			picked := item
			return &Recommendation{
				Action: ActionBuy,
				Item:   &picked,
				Reason: fmt.Sprintf("Affordable %s that fits current budget.", item.Type),
			}
		}
	}
	return &Recommendation{
		Action: ActionSkip,
		Reason: "Nothing affordable or valuable in shop.",
	}
}
