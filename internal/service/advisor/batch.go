package advisor

import (
	"context"
	"fmt"

	appErr "balatro-spectator/pkg/errors"

	"golang.org/x/sync/errgroup"
)

// RecommendBatch runs Recommend for each state, at most BatchConcurrency at a
// time. Results keep the input order; the first failure cancels the rest.
func (s *Service) RecommendBatch(ctx context.Context, states []GameState) ([]*Recommendation, error) {
	if len(states) > s.cfg.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d states, limit %d", appErr.ErrTooManyStates, len(states), s.cfg.MaxBatchSize)
	}

	out := make([]*Recommendation, len(states))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)

	for i := range states {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := s.Recommend(gctx, states[i])
			if err != nil {
				return fmt.Errorf("state %d: %w", i, err)
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
