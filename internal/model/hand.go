package model

type HandType string

const (
	HandHighCard      HandType = "High Card"
	HandPair          HandType = "Pair"
	HandTwoPair       HandType = "Two Pair"
	HandThreeOfAKind  HandType = "Three of a Kind"
	HandStraight      HandType = "Straight"
	HandFlush         HandType = "Flush"
	HandFullHouse     HandType = "Full House"
	HandFourOfAKind   HandType = "Four of a Kind"
	HandStraightFlush HandType = "Straight Flush"
	// HandFiveOfAKind has a level entry but is never produced by the
	// standard classifier.
	HandFiveOfAKind HandType = "Five of a Kind"
)

// AllHandTypes lists every hand type strongest first.
func AllHandTypes() []HandType {
	return []HandType{
		HandFiveOfAKind,
		HandStraightFlush,
		HandFourOfAKind,
		HandFullHouse,
		HandFlush,
		HandStraight,
		HandThreeOfAKind,
		HandTwoPair,
		HandPair,
		HandHighCard,
	}
}

// HandLevel is the base chips and mult a hand type starts from.
type HandLevel struct {
	Chips int `json:"chips" yaml:"chips"`
	Mult  int `json:"mult" yaml:"mult"`
}
