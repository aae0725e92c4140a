package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brimline/capquote/internal/domain"
)

// markerPrefix opens the machine-readable summary line the CLI prints under
// every quote. The extractor reads it back out of conversation history to
// carry the full specification across follow-up messages.
const markerPrefix = "QUOTE #"

const markerEmpty = "-"

// FormatMarker renders the summary line for a quoted context:
//
//	QUOTE #<id> | qty=576 | fabric=Acrylic/Airmesh | closure=Flexfit | decorations=Rubber Patch Large@Front; Flat Embroidery Small@Left | accessories=Hang Tag
//
// Unset fields are written as "-".
func FormatMarker(id string, ctx domain.CostingContext) string {
	decorations := markerEmpty
	if len(ctx.Decorations) > 0 {
		parts := make([]string, 0, len(ctx.Decorations))
		for _, d := range ctx.Decorations {
			parts = append(parts, fmt.Sprintf("%s %s@%s", d.Type, d.Size, d.Position))
		}
		decorations = strings.Join(parts, "; ")
	}
	accessories := markerEmpty
	if len(ctx.Accessories) > 0 {
		accessories = strings.Join(ctx.Accessories, ", ")
	}
	return fmt.Sprintf("%s%s | qty=%d | fabric=%s | closure=%s | decorations=%s | accessories=%s",
		markerPrefix, id, ctx.Quantity,
		orEmpty(ctx.FabricType), orEmpty(ctx.ClosureType), decorations, accessories)
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return markerEmpty
	}
	return s
}

// parseMarker reads a marker line back into requirements. The second return
// is false when the text holds no marker.
func parseMarker(text string) (Requirements, bool) {
	var line string
	for _, l := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), markerPrefix) {
			line = strings.TrimSpace(l)
			break
		}
	}
	if line == "" {
		return Requirements{}, false
	}

	var req Requirements
	for _, field := range strings.Split(line, "|")[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" || value == markerEmpty {
			continue
		}
		switch strings.TrimSpace(key) {
		case "qty":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				req.Quantity = &n
			}
		case "fabric":
			fabric := value
			req.Fabric = &fabric
		case "closure":
			closure := value
			req.Closure = &closure
		case "decorations":
			for _, token := range strings.Split(value, ";") {
				if m, ok := parseDecorationToken(token); ok {
					req.Decorations = append(req.Decorations, m)
				}
			}
			req.Primary = pickPrimary(req.Decorations)
		case "accessories":
			for _, name := range strings.Split(value, ",") {
				if name = strings.TrimSpace(name); name != "" {
					req.Accessories = append(req.Accessories, name)
				}
			}
		}
	}
	return req, true
}

// parseDecorationToken reads "Rubber Patch Large@Front" style tokens.
func parseDecorationToken(token string) (DecorationMention, bool) {
	token = strings.TrimSpace(token)
	head, pos, ok := strings.Cut(token, "@")
	if !ok {
		return DecorationMention{}, false
	}
	words := strings.Fields(strings.TrimSpace(head))
	if len(words) < 2 {
		return DecorationMention{}, false
	}
	size := domain.Size(words[len(words)-1])
	if size != domain.SizeSmall && size != domain.SizeMedium && size != domain.SizeLarge {
		return DecorationMention{}, false
	}
	return DecorationMention{
		Type:       strings.Join(words[:len(words)-1], " "),
		Size:       size,
		Position:   domain.Position(strings.TrimSpace(pos)),
		Confidence: 1.0,
	}, true
}
