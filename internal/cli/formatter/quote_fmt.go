package formatter

import (
	"fmt"
	"strings"

	"github.com/brimline/capquote/internal/domain"
	"github.com/brimline/capquote/internal/extract"
)

// RenderBreakdown renders the itemized cost breakdown as a table per
// category, followed by the grand total.
func RenderBreakdown(result *domain.CostBreakdownResult) string {
	headers := []string{"Item", "Unit", "Qty", "Total", ""}
	var rows [][]string

	addLine := func(item domain.CostLineItem) {
		note := ""
		if item.Waived {
			note = WaivedTag() + " " + Dim(item.WaiverReason)
		} else if item.Details != "" {
			note = Dim(item.Details)
		}
		rows = append(rows, []string{
			item.Name,
			UnitPrice(item.UnitPrice),
			fmt.Sprintf("%d", item.Quantity),
			Money(item.TotalCost),
			note,
		})
	}

	for _, line := range result.AllLines() {
		addLine(line)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 1, 2, 3))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s  (%d units)",
		Bold("TOTAL"), StyleGreen.Render(Money(result.TotalCost)), result.TotalUnits))
	return b.String()
}

// RenderQuote renders a stored quote: the breakdown boxed under the quote
// ID, then the machine-readable marker line follow-up messages key on.
func RenderQuote(q *domain.Quote) string {
	title := fmt.Sprintf("Quote %s", shortID(q.ID))
	body := RenderBreakdown(&q.Result)
	return RenderBox(title, body) + "\n" + extract.FormatMarker(q.ID, q.Context)
}

// RenderQuoteSummaries renders one line per historical quote.
func RenderQuoteSummaries(quotes []*domain.Quote) string {
	if len(quotes) == 0 {
		return Dim("no quotes yet")
	}
	headers := []string{"ID", "Created", "Qty", "Total"}
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{
			shortID(q.ID),
			q.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", q.Context.Quantity),
			Money(q.Result.TotalCost),
		})
	}
	return RenderTable(headers, rows, 2, 3)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
