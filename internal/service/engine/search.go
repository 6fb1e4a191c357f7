package engine

import "balatro-spectator/internal/model"

// BestHand is the outcome of an exhaustive search over a hand.
type BestHand struct {
	HandType    model.HandType    `json:"handType"`
	Cards       []model.Card      `json:"cards"`
	Result      model.ScoreResult `json:"result"`
	Evaluations int               `json:"evaluations"`
}

// Searcher scores every legal play of a hand and keeps the best one.
type Searcher struct {
	scorer     *Scorer
	classifier Classifier
}

// NewSearcher falls back to the default scorer and StandardClassifier for
// nil arguments.
func NewSearcher(scorer *Scorer, classifier Classifier) *Searcher {
	if scorer == nil {
		scorer = defaultScorer
	}
	if classifier == nil {
		classifier = StandardClassifier{}
	}
	return &Searcher{scorer: scorer, classifier: classifier}
}

func (s *Searcher) Scorer() *Scorer { return s.scorer }

func (s *Searcher) Classifier() Classifier { return s.classifier }

// FindBest returns the highest-total play of 1 to 5 cards from hand. Cards not
// played count as held. Plays are visited by size, then lexicographically by
// index, and the first play reaching the maximum wins ties. An empty hand
// yields High Card with no cards and a zero result.
//
// The search is exhaustive and scores Σ C(n, r) plays for r = 1..5, which
// grows exponentially with hand size (1585 plays at 12 cards, see
// CountSubsets). It applies no limit itself; callers taking untrusted input
// should bound the hand first, as advisor.Service does with MaxHandSize.
func FindBest(hand []model.Card, jokers model.JokerSet, classifier Classifier) (model.HandType, []model.Card, model.ScoreResult) {
	best := NewSearcher(nil, classifier).Search(hand, jokers)
	return best.HandType, best.Cards, best.Result
}

func (s *Searcher) FindBest(hand []model.Card, jokers model.JokerSet) (model.HandType, []model.Card, model.ScoreResult) {
	best := s.Search(hand, jokers)
	return best.HandType, best.Cards, best.Result
}

// Search is FindBest that also reports how many plays were scored.
func (s *Searcher) Search(hand []model.Card, jokers model.JokerSet) BestHand {
	best := BestHand{HandType: model.HandHighCard, Cards: []model.Card{}}
	n := len(hand)
	if n == 0 {
		return best
	}

	played := make([]model.Card, 0, MaxPlayedCards)
	held := make([]model.Card, 0, n)
	inPlay := make([]bool, n)
	bestTotal := int64(-1)

	for r := 1; r <= MaxPlayedCards && r <= n; r++ {
		combinations(n, r, func(idx []int) {
			played = played[:0]
			for _, i := range idx {
				played = append(played, hand[i])
				inPlay[i] = true
			}
			held = held[:0]
			for i, c := range hand {
				if !inPlay[i] {
					held = append(held, c)
				}
			}
			for _, i := range idx {
				inPlay[i] = false
			}

			handType := s.classifier.Classify(played)
			result := s.scorer.Score(handType, played, held, jokers)
			best.Evaluations++

			if result.Total > bestTotal {
				bestTotal = result.Total
				best.HandType = handType
				best.Cards = append(best.Cards[:0], played...)
				best.Result = result
			}
		})
	}
	return best
}
