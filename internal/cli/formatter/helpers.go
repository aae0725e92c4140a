package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Money renders a decimal amount with two fixed fraction digits and a
// dollar sign.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// UnitPrice renders a per-unit amount. At least two fraction digits are
// shown; finer precision is kept when tier math produced it.
func UnitPrice(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return "$" + d.StringFixed(2)
	}
	return "$" + d.String()
}
