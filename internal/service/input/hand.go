package input

import (
	"fmt"
	"strings"

	"balatro-spectator/internal/model"
	appErr "balatro-spectator/pkg/errors"
)

// ParseHand reads a comma-separated list of cards, e.g.
// "A of Hearts, K of Hearts [Foil]". Blank entries are skipped.
func ParseHand(s string) ([]model.Card, error) {
	var texts []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			texts = append(texts, p)
		}
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: empty hand", appErr.ErrInvalidCard)
	}
	return model.ParseCards(texts)
}
