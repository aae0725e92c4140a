package formatter

import (
	"fmt"
	"strings"

	"github.com/brimline/capquote/internal/extract"
	"github.com/brimline/capquote/internal/rules"
)

// RenderRequirements shows what the extractor understood from a message,
// field by field, with unmentioned fields dimmed.
func RenderRequirements(req extract.Requirements) string {
	var b strings.Builder
	b.WriteString(Header("understood requirements"))
	b.WriteString("\n")

	field := func(name, value string) {
		if value == "" {
			b.WriteString(fmt.Sprintf("%-12s %s\n", name, Dim("not mentioned")))
			return
		}
		b.WriteString(fmt.Sprintf("%-12s %s\n", name, value))
	}

	qty := ""
	if req.Quantity != nil {
		qty = fmt.Sprintf("%d", *req.Quantity)
	}
	field("Quantity", qty)
	field("Fabric", strValue(req.Fabric))
	field("Closure", strValue(req.Closure))

	if len(req.Decorations) == 0 {
		field("Decorations", "")
	} else {
		parts := make([]string, 0, len(req.Decorations))
		for _, d := range req.Decorations {
			part := fmt.Sprintf("%s %s @ %s", d.Size, d.Type, d.Position)
			if req.Primary != nil && *req.Primary == d {
				part = Bold(part)
			}
			parts = append(parts, part)
		}
		field("Decorations", strings.Join(parts, ", "))
	}

	accessories := ""
	if len(req.Accessories) > 0 {
		accessories = strings.Join(req.Accessories, ", ")
	}
	field("Accessories", accessories)
	return strings.TrimRight(b.String(), "\n")
}

// RenderValidation prints blocking errors first, then advisory warnings.
func RenderValidation(result rules.ValidationResult) string {
	var lines []string
	for _, e := range result.Errors {
		lines = append(lines, ErrorLine(e.String()))
	}
	for _, w := range result.Warnings {
		lines = append(lines, WarningLine(w))
	}
	if len(lines) == 0 {
		return StyleGreen.Render("✓ context is valid")
	}
	return strings.Join(lines, "\n")
}

// RenderSuggestions renders the optimization advice list.
func RenderSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return Dim("no savings found")
	}
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, StyleBlue.Render("→ ")+s)
	}
	return strings.Join(lines, "\n")
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
