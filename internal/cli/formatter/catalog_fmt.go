package formatter

import (
	"fmt"

	"github.com/brimline/capquote/internal/domain"
)

// RenderPriceRows renders catalog rows with one column per quantity
// breakpoint. Not-offered cells show a dash.
func RenderPriceRows(rows []domain.PriceRow) string {
	if len(rows) == 0 {
		return Dim("catalog is empty")
	}

	headers := []string{"Name", "Category"}
	var rightCols []int
	for i, bp := range domain.Breakpoints {
		headers = append(headers, fmt.Sprintf("@%d", bp))
		rightCols = append(rightCols, i+2)
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := []string{row.Name, Dim(string(row.Category))}
		for _, bp := range domain.Breakpoints {
			if p, ok := row.PriceAt(bp); ok {
				cells = append(cells, p.StringFixed(2))
			} else {
				cells = append(cells, Dim("-"))
			}
		}
		table = append(table, cells)
	}
	return RenderTable(headers, table, rightCols...)
}
