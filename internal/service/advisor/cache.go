package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/engine"
	appErr "balatro-spectator/pkg/errors"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

const bestKeyPrefix = "spectator:best:"

// bestKey hashes the level table, the hand in order, and the jokers in
// application order. Hand order is part of the key because ties resolve to
// the first play found.
func (s *Service) bestKey(hand []model.Card, jokers model.JokerSet) string {
	d := xxhash.New()
	_, _ = d.WriteString(s.levelsKey)
	for _, c := range hand {
		_, _ = d.WriteString("|c:")
		_, _ = d.WriteString(c.String())
	}
	for i := 0; i < jokers.Len(); i++ {
		j := jokers.At(i)
		_, _ = d.WriteString("|j:")
		_, _ = d.WriteString(string(j.Effect))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(strconv.FormatFloat(j.Value, 'g', -1, 64))
	}
	return fmt.Sprintf("%s%016x", bestKeyPrefix, d.Sum64())
}

func levelsFingerprint(levels engine.LevelTable) string {
	d := xxhash.New()
	for _, e := range levels.Entries() {
		_, _ = fmt.Fprintf(d, "%s=%d/%d;", e.HandType, e.Chips, e.Mult)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

func (s *Service) loadBest(ctx context.Context, key string) (*engine.BestHand, error) {
	if s.rdb == nil {
		return nil, appErr.ErrCacheMiss
	}
	payload, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, appErr.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var best engine.BestHand
	if err := json.Unmarshal([]byte(payload), &best); err != nil {
		return nil, err
	}
	return &best, nil
}

func (s *Service) saveBest(ctx context.Context, key string, best *engine.BestHand) error {
	if s.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(best)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, s.cfg.CacheTTL).Err()
}
