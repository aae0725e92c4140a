package extract

import "sort"

// Match is one rule hit inside the source text. Confidence ranks competing
// rules for the same field; Span locates the hit for window-based inference
// and overlap resolution.
type Match struct {
	Value      string
	Confidence float64
	Start      int
	End        int
}

func (m Match) overlaps(o Match) bool {
	return m.Start < o.End && o.Start < m.End
}

// bestMatch picks the winner for a single-valued field: highest confidence,
// earliest occurrence on ties.
func bestMatch(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence > best.Confidence ||
			(m.Confidence == best.Confidence && m.Start < best.Start) {
			best = m
		}
	}
	return best, true
}

// resolveMatches keeps the highest-confidence non-overlapping matches and
// returns them in text order. A nested hit ("embroidery" inside "3d
// embroidery") loses to the more specific rule that covers it.
func resolveMatches(matches []Match) []Match {
	ranked := append([]Match(nil), matches...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Start < ranked[j].Start
	})

	var kept []Match
	for _, m := range ranked {
		clear := true
		for _, k := range kept {
			if m.overlaps(k) {
				clear = false
				break
			}
		}
		if clear {
			kept = append(kept, m)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}

// window clips [start-radius, end+radius) to the text bounds and returns the
// surrounding excerpt together with its offset into the original text.
func window(text string, start, end, radius int) (string, int) {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi], lo
}
