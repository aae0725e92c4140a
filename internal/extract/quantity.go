package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "576 pcs", "1,000 pieces", "144 caps", "2880 units", "500 hats"
	quantityUnitRe = regexp.MustCompile(`(?i)\b(\d[\d,]*)\s*(?:pcs|pieces?|caps?|units?|hats?)\b`)
	// "quantity of 576", "qty: 576", "qty 576"
	quantityPhraseRe = regexp.MustCompile(`(?i)\b(?:quantity|qty)(?:\s*(?:of|:|=))?\s*(\d[\d,]*)\b`)
)

func extractQuantity(text string) (*int, []Match) {
	var matches []Match
	for _, loc := range quantityUnitRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, Match{
			Value:      text[loc[2]:loc[3]],
			Confidence: 0.9,
			Start:      loc[0],
			End:        loc[1],
		})
	}
	for _, loc := range quantityPhraseRe.FindAllStringSubmatchIndex(text, -1) {
		matches = append(matches, Match{
			Value:      text[loc[2]:loc[3]],
			Confidence: 0.8,
			Start:      loc[0],
			End:        loc[1],
		})
	}

	best, ok := bestMatch(matches)
	if !ok {
		return nil, matches
	}
	n, err := strconv.Atoi(strings.ReplaceAll(best.Value, ",", ""))
	if err != nil || n <= 0 {
		return nil, matches
	}
	return &n, matches
}
