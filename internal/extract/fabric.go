package extract

import (
	"regexp"
	"strings"
)

// fabricAlt enumerates the spoken fabric phrases, multi-word first so the
// regex engine prefers them.
const fabricAlt = `chino twill|air mesh|camouflage|acrylic|airmesh|cotton|polyester|suede|wool|corduroy|camo|denim|mesh|twill`

var (
	// "Acrylic/Airmesh", "chino twill/suede"; halves are re-checked against
	// the vocabulary and the color list before the pair is believed.
	slashPairRe = regexp.MustCompile(`(?i)\b([a-z]+(?:\s[a-z]+)??)\s*/\s*([a-z]+(?:\s[a-z]+)??)\b`)

	// "Acrylic front and Airmesh back"
	fabricFrontBackRe = regexp.MustCompile(`(?i)\b(` + fabricAlt + `)\s+(?:on\s+the\s+)?front\b.{0,20}?\b(` + fabricAlt + `)\s+(?:on\s+the\s+)?back\b`)
	// "front Acrylic back Airmesh"
	frontFabricBackRe = regexp.MustCompile(`(?i)\bfront\s+(` + fabricAlt + `)\b.{0,20}?\bback\s+(` + fabricAlt + `)\b`)
)

// normalizeFabricHalf resolves one side of a dual-fabric phrase. Trailing
// filler like "fabric" is shed by retrying on the first word.
func normalizeFabricHalf(s string) (canonical string, known bool, color bool) {
	s = strings.TrimSpace(s)
	if c, ok := canonicalFabric(s); ok {
		return c, true, false
	}
	if isColorName(s) {
		return s, false, true
	}
	first := strings.Fields(s)
	if len(first) > 1 {
		if c, ok := canonicalFabric(first[0]); ok {
			return c, true, false
		}
		if isColorName(first[0]) {
			return first[0], false, true
		}
	}
	return s, false, false
}

func extractFabric(text string) *string {
	var matches []Match

	for _, re := range []*regexp.Regexp{fabricFrontBackRe, frontFabricBackRe} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			a, _, _ := normalizeFabricHalf(text[loc[2]:loc[3]])
			b, _, _ := normalizeFabricHalf(text[loc[4]:loc[5]])
			matches = append(matches, Match{
				Value:      a + "/" + b,
				Confidence: 1.0,
				Start:      loc[0],
				End:        loc[1],
			})
		}
	}

	for _, loc := range slashPairRe.FindAllStringSubmatchIndex(text, -1) {
		a, aKnown, aColor := normalizeFabricHalf(text[loc[2]:loc[3]])
		b, bKnown, bColor := normalizeFabricHalf(text[loc[4]:loc[5]])
		if aColor && bColor {
			// A color pair names a colorway, never a fabric split.
			continue
		}
		if !aKnown && !bKnown {
			continue
		}
		matches = append(matches, Match{
			Value:      a + "/" + b,
			Confidence: 0.95,
			Start:      loc[0],
			End:        loc[1],
		})
	}

	matches = append(matches, scanVocab(text, fabricVocab)...)

	best, ok := bestMatch(matches)
	if !ok {
		return nil
	}
	return &best.Value
}
