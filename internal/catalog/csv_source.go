package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/domain"
)

// csvHeader is the required column layout of a flat-file catalog.
var csvHeader = []string{
	"Name", "Category",
	"price@48", "price@144", "price@576", "price@1152", "price@2880", "price@10000", "price@20000",
}

// notOfferedSentinel marks a price cell as "not offered at this volume".
// An empty cell means the same thing; both are distinct from a numeric zero.
const notOfferedSentinel = "-"

// CSVSource loads the catalog from a CSV file with the header
// Name,Category,price@48,...,price@20000.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(ctx context.Context) (*Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	rows, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", s.path, err)
	}
	snap := NewSnapshot(rows)
	if err := checkRequiredCategories(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// ParseCSV reads price rows from r. Any malformed row fails the whole parse:
// the catalog never fills in a price it could not read.
func ParseCSV(r io.Reader) ([]domain.PriceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}

	var rows []domain.PriceRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(record []string) (domain.PriceRow, error) {
	name := strings.TrimSpace(record[0])
	if name == "" {
		return domain.PriceRow{}, fmt.Errorf("empty row name")
	}
	category := strings.TrimSpace(record[1])
	if !domain.ValidCategories[category] {
		return domain.PriceRow{}, fmt.Errorf("unknown category %q", category)
	}

	row := domain.PriceRow{
		Name:     name,
		Category: domain.Category(category),
		Prices:   make(map[int]decimal.Decimal, len(domain.Breakpoints)),
	}
	for i, bp := range domain.Breakpoints {
		cell := strings.TrimSpace(record[i+2])
		if cell == "" || cell == notOfferedSentinel {
			continue
		}
		d, err := decimal.NewFromString(cell)
		if err != nil {
			return domain.PriceRow{}, fmt.Errorf("price@%d: invalid price %q", bp, cell)
		}
		if d.IsNegative() {
			return domain.PriceRow{}, fmt.Errorf("price@%d: negative price %q", bp, cell)
		}
		row.Prices[bp] = d
	}
	return row, nil
}
