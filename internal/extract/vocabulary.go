package extract

import (
	"regexp"
	"strings"
)

// vocabEntry maps one spoken phrase to its canonical catalog name. Phrases
// are matched case-insensitively on word boundaries.
type vocabEntry struct {
	phrase     string
	canonical  string
	confidence float64
	re         *regexp.Regexp
}

func compileVocab(entries []vocabEntry) []vocabEntry {
	out := make([]vocabEntry, len(entries))
	for i, e := range entries {
		e.re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(e.phrase) + `\b`)
		out[i] = e
	}
	return out
}

// fabricVocab covers the budget fabrics plus every premium fabric the price
// book carries. Multi-word phrases sit first so they win overlap resolution
// on equal confidence.
var fabricVocab = compileVocab([]vocabEntry{
	{phrase: "chino twill", canonical: "Chino Twill", confidence: 0.7},
	{phrase: "twill", canonical: "Chino Twill", confidence: 0.5},
	{phrase: "cotton", canonical: "Cotton", confidence: 0.7},
	{phrase: "polyester", canonical: "Polyester", confidence: 0.7},
	{phrase: "acrylic", canonical: "Acrylic", confidence: 0.7},
	{phrase: "airmesh", canonical: "Airmesh", confidence: 0.7},
	{phrase: "air mesh", canonical: "Airmesh", confidence: 0.7},
	{phrase: "mesh", canonical: "Airmesh", confidence: 0.4},
	{phrase: "suede", canonical: "Suede", confidence: 0.7},
	{phrase: "wool", canonical: "Wool", confidence: 0.7},
	{phrase: "corduroy", canonical: "Corduroy", confidence: 0.7},
	{phrase: "camo", canonical: "Camo", confidence: 0.7},
	{phrase: "camouflage", canonical: "Camo", confidence: 0.7},
	{phrase: "denim", canonical: "Denim", confidence: 0.7},
})

var closureVocab = compileVocab([]vocabEntry{
	{phrase: "flexfit", canonical: "Flexfit", confidence: 0.9},
	{phrase: "flex fit", canonical: "Flexfit", confidence: 0.9},
	{phrase: "fitted", canonical: "Fitted", confidence: 0.8},
	{phrase: "metal buckle", canonical: "Metal Buckle", confidence: 0.9},
	{phrase: "buckle", canonical: "Metal Buckle", confidence: 0.6},
	{phrase: "leather strap", canonical: "Leather Strap", confidence: 0.9},
	{phrase: "plastic snap", canonical: "Plastic Snap", confidence: 0.9},
	{phrase: "snapback", canonical: "Plastic Snap", confidence: 0.8},
	{phrase: "snap closure", canonical: "Plastic Snap", confidence: 0.9},
	{phrase: "snap", canonical: "Plastic Snap", confidence: 0.4},
	{phrase: "velcro strap", canonical: "Velcro Strap", confidence: 0.9},
	{phrase: "velcro closure", canonical: "Velcro Strap", confidence: 0.9},
})

var accessoryVocab = compileVocab([]vocabEntry{
	{phrase: "hang tags", canonical: "Hang Tag", confidence: 0.9},
	{phrase: "hang tag", canonical: "Hang Tag", confidence: 0.9},
	{phrase: "hangtags", canonical: "Hang Tag", confidence: 0.9},
	{phrase: "hangtag", canonical: "Hang Tag", confidence: 0.9},
	{phrase: "woven labels", canonical: "Woven Label", confidence: 0.9},
	{phrase: "woven label", canonical: "Woven Label", confidence: 0.9},
	{phrase: "labels", canonical: "Woven Label", confidence: 0.5},
	{phrase: "label", canonical: "Woven Label", confidence: 0.5},
	{phrase: "stickers", canonical: "Sticker", confidence: 0.8},
	{phrase: "sticker", canonical: "Sticker", confidence: 0.8},
	{phrase: "polybags", canonical: "Polybag", confidence: 0.9},
	{phrase: "polybag", canonical: "Polybag", confidence: 0.9},
	{phrase: "poly bags", canonical: "Polybag", confidence: 0.9},
	{phrase: "poly bag", canonical: "Polybag", confidence: 0.9},
})

// colorNames disqualify a slash pair from being read as a fabric split.
// "Red/White" is a colorway, not a fabric combination.
var colorNames = map[string]bool{
	"red": true, "white": true, "black": true, "blue": true, "navy": true,
	"green": true, "yellow": true, "orange": true, "purple": true,
	"pink": true, "brown": true, "grey": true, "gray": true, "khaki": true,
	"beige": true, "maroon": true, "gold": true, "silver": true, "tan": true,
	"charcoal": true, "cream": true, "royal": true, "burgundy": true,
}

func isColorName(s string) bool {
	return colorNames[strings.ToLower(strings.TrimSpace(s))]
}

// canonicalFabric resolves a free-form fabric word against the vocabulary,
// returning ok=false for words it does not know.
func canonicalFabric(s string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, e := range fabricVocab {
		if strings.ToLower(e.phrase) == needle {
			return e.canonical, true
		}
	}
	return "", false
}

// scanVocab runs every vocabulary entry over the text and returns the raw
// hits, value holding the canonical name.
func scanVocab(text string, vocab []vocabEntry) []Match {
	var matches []Match
	for _, e := range vocab {
		for _, loc := range e.re.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Value:      e.canonical,
				Confidence: e.confidence,
				Start:      loc[0],
				End:        loc[1],
			})
		}
	}
	return matches
}
