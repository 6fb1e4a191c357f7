package main

import (
	"strings"

	"balatro-spectator/internal/model"
	"balatro-spectator/internal/service/advisor"

	"github.com/pterm/pterm"
)

func recommendationPanel(rec *advisor.Recommendation) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{
		Data: pbox.WithTitle(pterm.LightYellow("|RECOMMENDATION|")).WithTitleTopCenter().Sprint(recommendationText(rec)),
	}
}

func recommendationText(rec *advisor.Recommendation) string {
	var b strings.Builder
	b.WriteString(pterm.Sprintfln("ACTION: %s", pterm.LightCyan(strings.ToUpper(string(rec.Action)))))
	if rec.HandType != "" {
		b.WriteString(pterm.Sprintfln("HAND: %s", rec.HandType))
		b.WriteString(pterm.Sprintfln("CARDS: %s", renderCards(rec.Cards)))
		b.WriteString(pterm.Sprintfln("EXPECTED: %d", rec.ExpectedScore))
	}
	if rec.Item != nil {
		b.WriteString(pterm.Sprintfln("ITEM: %s (%d)", rec.Item.Name, rec.Item.Cost))
	}
	b.WriteString(pterm.Sprintf("REASON: %s", rec.Reason))
	return b.String()
}

func renderCards(cards []model.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit().Red() {
			parts[i] = pterm.LightRed(c.Short())
		} else {
			parts[i] = pterm.Gray(c.Short())
		}
		if c.Enhancement() != model.EnhancementNone || c.Edition() != model.EditionNone {
			parts[i] += pterm.Gray("*")
		}
	}
	return strings.Join(parts, ", ")
}
