package service

import (
	"balatro-spectator/internal/config"
	"balatro-spectator/internal/service/advisor"
	"balatro-spectator/internal/service/engine"
	"balatro-spectator/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Container struct {
	Searcher *engine.Searcher
	Advisor  *advisor.Service
}

// NewContainer wires the engine and advisor from cfg. rdb may be nil.
func NewContainer(cfg *config.Config, rdb *redis.Client) (*Container, error) {
	levels := engine.DefaultLevels()
	if cfg.Engine.LevelsFile != "" {
		loaded, err := engine.LoadLevels(cfg.Engine.LevelsFile)
		if err != nil {
			return nil, err
		}
		levels = loaded
		logger.Log.Info("hand levels loaded", zap.String("file", cfg.Engine.LevelsFile))
	}

	searcher := engine.NewSearcher(engine.NewScorer(levels), engine.StandardClassifier{})
	return &Container{
		Searcher: searcher,
		Advisor: advisor.NewService(searcher, rdb, advisor.Config{
			MaxHandSize:      cfg.Engine.MaxHandSize,
			CacheTTL:         cfg.Cache.TTL(),
			BatchConcurrency: cfg.Batch.Concurrency,
			MaxBatchSize:     cfg.Batch.MaxStates,
		}),
	}, nil
}
