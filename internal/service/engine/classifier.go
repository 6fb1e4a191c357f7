package engine

import "balatro-spectator/internal/model"

// Classifier names the poker hand a set of played cards forms.
type Classifier interface {
	Classify(cards []model.Card) model.HandType
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(cards []model.Card) model.HandType

func (f ClassifierFunc) Classify(cards []model.Card) model.HandType {
	return f(cards)
}

// StandardClassifier applies the fixed hand-priority rules of Classify.
type StandardClassifier struct{}

func (StandardClassifier) Classify(cards []model.Card) model.HandType {
	return Classify(cards)
}

// Classify returns the strongest hand type the cards satisfy, checked in
// order: Straight Flush, Four of a Kind, Full House, Flush, Straight,
// Three of a Kind, Two Pair, Pair, High Card.
//
// Flushes and straights need at least five cards. The ace is high except in
// the A-2-3-4-5 straight. Four of a Kind needs a rank seen exactly four times,
// so five cards of one rank fall through to Flush or High Card. The result
// depends only on the multiset of cards.
func Classify(cards []model.Card) model.HandType {
	if len(cards) == 0 {
		return model.HandHighCard
	}

	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		counts[c.Rank().Value()]++
	}

	flush := len(cards) >= 5 && sameSuit(cards)
	straight := len(cards) >= 5 && isStraight(counts)

	var three, pairs int
	four := false
	for _, n := range counts {
		switch {
		case n == 4:
			four = true
		case n == 3:
			three++
		case n == 2:
			pairs++
		}
	}

	switch {
	case flush && straight:
		return model.HandStraightFlush
	case four:
		return model.HandFourOfAKind
	case three > 0 && pairs > 0:
		return model.HandFullHouse
	case flush:
		return model.HandFlush
	case straight:
		return model.HandStraight
	case three > 0:
		return model.HandThreeOfAKind
	case pairs >= 2:
		return model.HandTwoPair
	case pairs == 1:
		return model.HandPair
	default:
		return model.HandHighCard
	}
}

func sameSuit(cards []model.Card) bool {
	suit := cards[0].Suit()
	for _, c := range cards[1:] {
		if c.Suit() != suit {
			return false
		}
	}
	return true
}

// isStraight expects rank counts and accepts exactly five distinct ranks that
// span four steps, or the wheel.
func isStraight(counts map[int]int) bool {
	if len(counts) != 5 {
		return false
	}
	lo, hi := 15, 0
	for v := range counts {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi-lo == 4 {
		return true
	}
	for _, v := range [...]int{14, 2, 3, 4, 5} {
		if counts[v] == 0 {
			return false
		}
	}
	return true
}
