package engine_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/engine"
	appErr "balatro-spectator/pkg/errors"
)

func writeLevels(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write levels file: %v", err)
	}
	return path
}

func TestLoadLevelsMergesOverDefaults(t *testing.T) {
	path := writeLevels(t, "levels:\n  Flush: {chips: 50, mult: 5}\n  Pair:\n    chips: 15\n    mult: 3\n")

	table, err := engine.LoadLevels(path)
	if err != nil {
		t.Fatalf("expected levels to load, got %v", err)
	}
	if got := table.Base(model.HandFlush); got != (model.HandLevel{Chips: 50, Mult: 5}) {
		t.Fatalf("expected Flush override, got %+v", got)
	}
	if got := table.Base(model.HandPair); got != (model.HandLevel{Chips: 15, Mult: 3}) {
		t.Fatalf("expected Pair override, got %+v", got)
	}
	if got := table.Base(model.HandStraightFlush); got != (model.HandLevel{Chips: 100, Mult: 8}) {
		t.Fatalf("expected untouched default, got %+v", got)
	}
}

func TestLoadLevelsRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown hand": "levels:\n  Royal Flush: {chips: 1, mult: 1}\n",
		"negative":     "levels:\n  Pair: {chips: -1, mult: 2}\n",
		"not yaml":     "levels: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := engine.LoadLevels(writeLevels(t, body))
			if !errors.Is(err, appErr.ErrInvalidLevels) {
				t.Fatalf("expected ErrInvalidLevels, got %v", err)
			}
		})
	}

	if _, err := engine.LoadLevels(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, appErr.ErrInvalidLevels) {
		t.Fatalf("expected ErrInvalidLevels for missing file, got %v", err)
	}
}

func TestLevelEntriesStrongestFirst(t *testing.T) {
	entries := engine.DefaultLevels().Entries()
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	if entries[0].HandType != model.HandFiveOfAKind || entries[len(entries)-1].HandType != model.HandHighCard {
		t.Fatalf("unexpected order: first %s, last %s", entries[0].HandType, entries[len(entries)-1].HandType)
	}
}
