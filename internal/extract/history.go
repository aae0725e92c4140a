package extract

// carryOver recovers the previously stated specification from conversation
// history. It prefers the most recent assistant quote marker, since that is
// the engine's own confirmed record; only when no marker exists does it fall
// back to re-reading the buyer's most recent message.
func carryOver(e *Extractor, history []Turn) (Requirements, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != RoleAssistant {
			continue
		}
		if req, ok := parseMarker(history[i].Content); ok {
			return req, true
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != RoleUser {
			continue
		}
		if req := e.extractText(history[i].Content); !req.IsEmpty() {
			return req, true
		}
		// Only the latest user turn is re-read; older turns were already
		// superseded by it.
		break
	}
	return Requirements{}, false
}
