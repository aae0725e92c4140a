package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line.
// rightAlign flags columns (by index) whose cells are padded on the left,
// which keeps money columns readable. Widths are measured with lipgloss so
// styled cells align with plain ones.
func RenderTable(headers []string, rows [][]string, rightAlign ...int) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)
	alignRight := make(map[int]bool, len(rightAlign))
	for _, i := range rightAlign {
		alignRight[i] = true
	}

	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	writeCell := func(content string, styled string, col int, last bool) {
		pad := widths[col] - lipgloss.Width(content)
		if pad < 0 {
			pad = 0
		}
		if alignRight[col] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(styled)
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			return
		}
		b.WriteString(styled)
		if !last {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range headers {
		writeCell(h, StyleHeader.Render(h), i, i == cols-1)
	}
	b.WriteString("\n")
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(cell, cell, i, i == cols-1)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
