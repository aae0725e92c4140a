package extract

// Extractor turns free-form buyer text into structured requirements. It is
// pure: no catalog access, no I/O, deterministic for a given input.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the message and fills whatever it leaves unsaid from the
// conversation history. A follow-up like "make it 576 pieces" keeps every
// previously stated specification and changes only the quantity.
func (e *Extractor) Extract(text string, history []Turn) Requirements {
	req := e.extractText(text)

	if carried, ok := carryOver(e, history); ok {
		req = req.merge(carried)
	}
	return req
}

// extractText runs every field extractor over a single message.
func (e *Extractor) extractText(text string) Requirements {
	var req Requirements

	req.Quantity, _ = extractQuantity(text)
	req.Fabric = extractFabric(text)

	if best, ok := bestMatch(scanVocab(text, closureVocab)); ok {
		req.Closure = &best.Value
	}
	if best, ok := bestMatch(scanVocab(text, sizeVocab)); ok {
		req.Size = &best.Value
	}

	req.Decorations, req.Primary = extractDecorations(text)

	for _, m := range resolveMatches(scanVocab(text, accessoryVocab)) {
		if !containsString(req.Accessories, m.Value) {
			req.Accessories = append(req.Accessories, m.Value)
		}
	}
	return req
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
