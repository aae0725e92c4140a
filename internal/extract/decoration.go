package extract

import (
	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/pricing"
)

const (
	// positionRadius is how far around a type hit position words are
	// trusted to describe that hit.
	positionRadius = 40
	// sizeRadius is tighter: size words sit right beside their type
	// ("small rubber patch"), and a looser window would let a size meant
	// for another decoration bleed over.
	sizeRadius = 16
	// dupRadius collapses repeated (type, position) mentions this close
	// together into one.
	dupRadius = 60
)

// decorationVocab is ordered by specificity: patch and 3D phrases outrank
// plain embroidery, which outranks the bare "logo" anchor.
var decorationVocab = compileVocab([]vocabEntry{
	{phrase: "printed woven patch", canonical: pricing.TypePrintWovenPatch, confidence: 0.95},
	{phrase: "print woven patch", canonical: pricing.TypePrintWovenPatch, confidence: 0.95},
	{phrase: "printed patch", canonical: pricing.TypePrintWovenPatch, confidence: 0.9},
	{phrase: "rubber patch", canonical: pricing.TypeRubberPatch, confidence: 0.95},
	{phrase: "pvc patch", canonical: pricing.TypeRubberPatch, confidence: 0.95},
	{phrase: "leather patch", canonical: pricing.TypeLeatherPatch, confidence: 0.95},
	{phrase: "woven patch", canonical: pricing.TypeWovenPatch, confidence: 0.9},
	{phrase: "screen printing", canonical: pricing.TypeScreenPrint, confidence: 0.9},
	{phrase: "screen print", canonical: pricing.TypeScreenPrint, confidence: 0.9},
	{phrase: "heat transfer", canonical: pricing.TypeHeatTransfer, confidence: 0.9},
	{phrase: "sublimation", canonical: pricing.TypeHeatTransfer, confidence: 0.9},
	{phrase: "3d puff embroidery", canonical: pricing.Type3DEmbroidery, confidence: 0.95},
	{phrase: "3d embroidery", canonical: pricing.Type3DEmbroidery, confidence: 0.95},
	{phrase: "3d puff", canonical: pricing.Type3DEmbroidery, confidence: 0.9},
	{phrase: "puff embroidery", canonical: pricing.Type3DEmbroidery, confidence: 0.9},
	{phrase: "flat embroidery", canonical: pricing.TypeFlatEmbroidery, confidence: 0.85},
	{phrase: "embroidered", canonical: pricing.TypeFlatEmbroidery, confidence: 0.5},
	{phrase: "embroidery", canonical: pricing.TypeFlatEmbroidery, confidence: 0.5},
	{phrase: "logo", canonical: pricing.TypeFlatEmbroidery, confidence: 0.3},
})

var positionVocab = compileVocab([]vocabEntry{
	{phrase: "upper bill", canonical: string(domain.PositionUpperBill), confidence: 0.9},
	{phrase: "under bill", canonical: string(domain.PositionUnderBill), confidence: 0.9},
	{phrase: "underbill", canonical: string(domain.PositionUnderBill), confidence: 0.9},
	{phrase: "front", canonical: string(domain.PositionFront), confidence: 0.8},
	{phrase: "back", canonical: string(domain.PositionBack), confidence: 0.8},
	{phrase: "left side", canonical: string(domain.PositionLeft), confidence: 0.85},
	{phrase: "left", canonical: string(domain.PositionLeft), confidence: 0.7},
	{phrase: "right side", canonical: string(domain.PositionRight), confidence: 0.85},
	{phrase: "right", canonical: string(domain.PositionRight), confidence: 0.7},
})

var sizeVocab = compileVocab([]vocabEntry{
	{phrase: "small", canonical: string(domain.SizeSmall), confidence: 0.8},
	{phrase: "medium", canonical: string(domain.SizeMedium), confidence: 0.8},
	{phrase: "large", canonical: string(domain.SizeLarge), confidence: 0.8},
	{phrase: "big", canonical: string(domain.SizeLarge), confidence: 0.5},
	{phrase: "tiny", canonical: string(domain.SizeSmall), confidence: 0.5},
})

// defaultSizeFor mirrors how buyers talk: the front crown carries the main
// art, side and back hits are accents.
func defaultSizeFor(pos domain.Position) domain.Size {
	if pos == domain.PositionFront {
		return domain.SizeLarge
	}
	return domain.SizeSmall
}

// nearestVocabHit scans a window around [start,end) and returns the hit
// closest to the anchor span. Hits after the anchor are preferred over hits
// before it: "rubber patch on the back" binds "back" to the patch even when
// an earlier decoration's position word sits just as close on the left.
func nearestVocabHit(text string, start, end int, vocab []vocabEntry, radius int) (string, bool) {
	excerpt, offset := window(text, start, end, radius)
	hits := scanVocab(excerpt, vocab)
	if len(hits) == 0 {
		return "", false
	}

	bestAfter, bestBefore := -1, -1
	var afterValue, beforeValue string
	for _, h := range hits {
		hitStart := offset + h.Start
		hitEnd := offset + h.End
		if hitStart >= end {
			if gap := hitStart - end; bestAfter < 0 || gap < bestAfter {
				bestAfter = gap
				afterValue = h.Value
			}
		} else if hitEnd <= start {
			if gap := start - hitEnd; bestBefore < 0 || gap < bestBefore {
				bestBefore = gap
				beforeValue = h.Value
			}
		}
	}
	if bestAfter >= 0 {
		return afterValue, true
	}
	if bestBefore >= 0 {
		return beforeValue, true
	}
	return "", false
}

func extractDecorations(text string) ([]DecorationMention, *DecorationMention) {
	hits := resolveMatches(scanVocab(text, decorationVocab))

	type located struct {
		mention DecorationMention
		start   int
	}
	var found []located
	for _, h := range hits {
		mention := DecorationMention{Type: h.Value, Confidence: h.Confidence}

		if pos, ok := nearestVocabHit(text, h.Start, h.End, positionVocab, positionRadius); ok {
			mention.Position = domain.Position(pos)
		} else {
			mention.Position = domain.PositionFront
		}
		if size, ok := nearestVocabHit(text, h.Start, h.End, sizeVocab, sizeRadius); ok {
			mention.Size = domain.Size(size)
		} else {
			mention.Size = defaultSizeFor(mention.Position)
		}

		found = append(found, located{mention: mention, start: h.Start})
	}

	// Collapse duplicate (type, position) pairs that sit close together;
	// "rubber patch on the front, a big rubber patch front and center" is
	// one request said twice.
	var kept []located
	for _, cand := range found {
		dup := false
		for i, k := range kept {
			if k.mention.Type == cand.mention.Type && k.mention.Position == cand.mention.Position {
				gap := cand.start - k.start
				if gap < 0 {
					gap = -gap
				}
				if gap <= dupRadius {
					if cand.mention.Confidence > k.mention.Confidence {
						kept[i] = cand
					}
					dup = true
					break
				}
			}
		}
		if !dup {
			kept = append(kept, cand)
		}
	}

	mentions := make([]DecorationMention, 0, len(kept))
	for _, k := range kept {
		mentions = append(mentions, k.mention)
	}
	return mentions, pickPrimary(mentions)
}

// pickPrimary favors the first front-of-cap mention, else the most confident
// one.
func pickPrimary(mentions []DecorationMention) *DecorationMention {
	if len(mentions) == 0 {
		return nil
	}
	for i := range mentions {
		if mentions[i].Position == domain.PositionFront {
			return &mentions[i]
		}
	}
	best := 0
	for i := range mentions {
		if mentions[i].Confidence > mentions[best].Confidence {
			best = i
		}
	}
	return &mentions[best]
}
