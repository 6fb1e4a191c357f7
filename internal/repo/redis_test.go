package repo_test

import (
	"testing"

	"balatro-spectator/internal/config"
	"balatro-spectator/internal/repo"

	"github.com/alicebob/miniredis/v2"
)

func TestInitRedisDisabled(t *testing.T) {
	if client := repo.InitRedis(config.RedisConfig{Enabled: false}); client != nil {
		t.Fatalf("expected nil client when disabled")
	}
}

func TestInitRedisConnects(t *testing.T) {
	mr := miniredis.RunT(t)

	client := repo.InitRedis(config.RedisConfig{Enabled: true, Addr: mr.Addr()})
	if client == nil {
		t.Fatalf("expected client for reachable redis")
	}
	t.Cleanup(func() { _ = client.Close() })
	if repo.RDB != client {
		t.Fatalf("expected package client to be set")
	}
}

func TestInitRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if client := repo.InitRedis(config.RedisConfig{Enabled: true, Addr: addr}); client != nil {
		t.Fatalf("expected nil client for unreachable redis")
	}
}
