package engine

import (
	"fmt"
	"os"
	"sort"

	"balatro-spectator/internal/model"
	appErr "balatro-spectator/pkg/errors"

	"gopkg.in/yaml.v3"
)

// LevelTable maps each hand type to its base chips and mult.
type LevelTable map[model.HandType]model.HandLevel

var defaultLevels = LevelTable{
	model.HandHighCard:      {Chips: 5, Mult: 1},
	model.HandPair:          {Chips: 10, Mult: 2},
	model.HandTwoPair:       {Chips: 20, Mult: 2},
	model.HandThreeOfAKind:  {Chips: 30, Mult: 3},
	model.HandStraight:      {Chips: 30, Mult: 4},
	model.HandFlush:         {Chips: 35, Mult: 4},
	model.HandFullHouse:     {Chips: 40, Mult: 4},
	model.HandFourOfAKind:   {Chips: 60, Mult: 7},
	model.HandStraightFlush: {Chips: 100, Mult: 8},
	model.HandFiveOfAKind:   {Chips: 120, Mult: 12},
}

// DefaultLevels returns a fresh copy of the level-1 table.
func DefaultLevels() LevelTable {
	return defaultLevels.Clone()
}

func (t LevelTable) Clone() LevelTable {
	out := make(LevelTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Base returns the level for a hand type; unknown types start at 0 chips, 0 mult.
func (t LevelTable) Base(ht model.HandType) model.HandLevel {
	return t[ht]
}

// Entry is one row of a LevelTable in strongest-first order.
type Entry struct {
	HandType model.HandType `json:"handType"`
	Chips    int            `json:"chips"`
	Mult     int            `json:"mult"`
}

// Entries lists the table strongest hand first. Hand types outside
// model.AllHandTypes follow in name order.
func (t LevelTable) Entries() []Entry {
	out := make([]Entry, 0, len(t))
	seen := make(map[model.HandType]bool, len(t))
	for _, ht := range model.AllHandTypes() {
		if lvl, ok := t[ht]; ok {
			out = append(out, Entry{HandType: ht, Chips: lvl.Chips, Mult: lvl.Mult})
			seen[ht] = true
		}
	}
	var extra []model.HandType
	for ht := range t {
		if !seen[ht] {
			extra = append(extra, ht)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, ht := range extra {
		out = append(out, Entry{HandType: ht, Chips: t[ht].Chips, Mult: t[ht].Mult})
	}
	return out
}

type levelsFile struct {
	Levels map[string]model.HandLevel `yaml:"levels"`
}

// LoadLevels reads a YAML override file and merges it over DefaultLevels.
//
//	levels:
//	  Flush: {chips: 50, mult: 5}
//
// Keys must be known hand type names and values must be non-negative.
func LoadLevels(path string) (LevelTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErr.ErrInvalidLevels, err)
	}
	return ParseLevels(raw)
}

func ParseLevels(raw []byte) (LevelTable, error) {
	var doc levelsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", appErr.ErrInvalidLevels, err)
	}

	known := make(map[model.HandType]bool)
	for _, ht := range model.AllHandTypes() {
		known[ht] = true
	}

	table := DefaultLevels()
	for name, lvl := range doc.Levels {
		ht := model.HandType(name)
		if !known[ht] {
			return nil, fmt.Errorf("%w: unknown hand type %q", appErr.ErrInvalidLevels, name)
		}
		if lvl.Chips < 0 || lvl.Mult < 0 {
			return nil, fmt.Errorf("%w: %q has negative chips or mult", appErr.ErrInvalidLevels, name)
		}
		table[ht] = lvl
	}
	return table, nil
}
