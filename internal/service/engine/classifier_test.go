package engine_test

import (
	"math/rand"
	"testing"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/engine"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		want  model.HandType
	}{
		{"empty", nil, model.HandHighCard},
		{"single", []string{"7 of Clubs"}, model.HandHighCard},
		{"pair", []string{"7 of Clubs", "7 of Hearts", "K of Spades"}, model.HandPair},
		{"two pair", []string{"7 of Clubs", "7 of Hearts", "K of Spades", "K of Clubs"}, model.HandTwoPair},
		{"three", []string{"9 of Clubs", "9 of Hearts", "9 of Spades"}, model.HandThreeOfAKind},
		{"four with four cards", []string{"9 of Clubs", "9 of Hearts", "9 of Spades", "9 of Diamonds"}, model.HandFourOfAKind},
		{"full house", []string{"9 of Clubs", "9 of Hearts", "9 of Spades", "4 of Diamonds", "4 of Clubs"}, model.HandFullHouse},
		{"flush", []string{"2 of Hearts", "6 of Hearts", "9 of Hearts", "J of Hearts", "K of Hearts"}, model.HandFlush},
		{"straight", []string{"5 of Clubs", "6 of Hearts", "7 of Spades", "8 of Diamonds", "9 of Clubs"}, model.HandStraight},
		{"broadway", []string{"10 of Clubs", "J of Hearts", "Q of Spades", "K of Diamonds", "A of Clubs"}, model.HandStraight},
		{"wheel", []string{"A of Clubs", "2 of Hearts", "3 of Spades", "4 of Diamonds", "5 of Clubs"}, model.HandStraight},
		{"no wrap", []string{"Q of Clubs", "K of Hearts", "A of Spades", "2 of Diamonds", "3 of Clubs"}, model.HandHighCard},
		{"straight flush", []string{"9 of Spades", "10 of Spades", "J of Spades", "Q of Spades", "K of Spades"}, model.HandStraightFlush},
		{"steel wheel", []string{"A of Spades", "2 of Spades", "3 of Spades", "4 of Spades", "5 of Spades"}, model.HandStraightFlush},
		{"four suited cards are not a flush", []string{"2 of Hearts", "6 of Hearts", "9 of Hearts", "J of Hearts"}, model.HandHighCard},
		{"four in a row is not a straight", []string{"5 of Clubs", "6 of Hearts", "7 of Spades", "8 of Diamonds"}, model.HandHighCard},
		{"four of a kind beats flush", []string{"9 of Hearts", "9 of Hearts", "9 of Hearts", "9 of Hearts", "2 of Hearts"}, model.HandFourOfAKind},
		{"full house beats flush", []string{"9 of Hearts", "9 of Hearts", "9 of Hearts", "2 of Hearts", "2 of Hearts"}, model.HandFullHouse},
		{"flush beats pair", []string{"9 of Hearts", "9 of Hearts", "3 of Hearts", "5 of Hearts", "K of Hearts"}, model.HandFlush},
		{"five of one rank mixed suits", []string{"9 of Hearts", "9 of Clubs", "9 of Spades", "9 of Diamonds", "9 of Hearts"}, model.HandHighCard},
		{"five of one rank one suit", []string{"9 of Hearts", "9 of Hearts", "9 of Hearts", "9 of Hearts", "9 of Hearts"}, model.HandFlush},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Classify(cards(t, tc.cards...))
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyIgnoresOrder(t *testing.T) {
	hands := [][]string{
		{"A of Clubs", "2 of Hearts", "3 of Spades", "4 of Diamonds", "5 of Clubs"},
		{"9 of Clubs", "9 of Hearts", "9 of Spades", "4 of Diamonds", "4 of Clubs"},
		{"7 of Clubs", "7 of Hearts", "K of Spades", "K of Clubs", "2 of Hearts"},
		{"2 of Hearts", "6 of Hearts", "9 of Hearts", "J of Hearts", "K of Hearts"},
	}
	rng := rand.New(rand.NewSource(7))

	for _, texts := range hands {
		hand := cards(t, texts...)
		want := engine.Classify(hand)
		for i := 0; i < 20; i++ {
			shuffled := append([]model.Card(nil), hand...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			if got := engine.Classify(shuffled); got != want {
				t.Fatalf("expected %s for permutation %v, got %s", want, shuffled, got)
			}
		}
	}
}

func TestClassifierAdapters(t *testing.T) {
	hand := cards(t, "K of Spades", "K of Hearts")

	var c engine.Classifier = engine.StandardClassifier{}
	if got := c.Classify(hand); got != model.HandPair {
		t.Fatalf("expected Pair, got %s", got)
	}

	c = engine.ClassifierFunc(func([]model.Card) model.HandType { return model.HandFlush })
	if got := c.Classify(hand); got != model.HandFlush {
		t.Fatalf("expected adapter result Flush, got %s", got)
	}
}
