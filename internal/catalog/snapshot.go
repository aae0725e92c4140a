package catalog

import (
	"strings"

	"github.com/brimline/capquote/internal/domain"
)

// Snapshot is an immutable view of the loaded price tables. Lookups are
// case-insensitive on the row name. A snapshot is never mutated after
// construction; reloads swap in a whole new one.
type Snapshot struct {
	rows map[domain.Category]map[string]domain.PriceRow
}

// NewSnapshot builds a snapshot from price rows. Later duplicates of the
// same (category, name) replace earlier ones.
func NewSnapshot(rows []domain.PriceRow) *Snapshot {
	s := &Snapshot{rows: make(map[domain.Category]map[string]domain.PriceRow)}
	for _, r := range rows {
		byName := s.rows[r.Category]
		if byName == nil {
			byName = make(map[string]domain.PriceRow)
			s.rows[r.Category] = byName
		}
		byName[strings.ToLower(r.Name)] = r
	}
	return s
}

// Row returns the named row within a category.
func (s *Snapshot) Row(category domain.Category, name string) (domain.PriceRow, bool) {
	r, ok := s.rows[category][strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

// RowsByCategory returns every row in a category, unordered.
func (s *Snapshot) RowsByCategory(category domain.Category) []domain.PriceRow {
	byName := s.rows[category]
	out := make([]domain.PriceRow, 0, len(byName))
	for _, r := range byName {
		out = append(out, r)
	}
	return out
}

// Len reports the total number of rows across all categories.
func (s *Snapshot) Len() int {
	n := 0
	for _, byName := range s.rows {
		n += len(byName)
	}
	return n
}

// MonotonicityViolations aggregates volume-discount violations across every
// row. The catalog flags them rather than rejecting the load: a drifted price
// sheet should surface loudly but still quote.
func (s *Snapshot) MonotonicityViolations() []domain.MonotonicityViolation {
	var out []domain.MonotonicityViolation
	for _, byName := range s.rows {
		for _, r := range byName {
			out = append(out, r.MonotonicityViolations()...)
		}
	}
	return out
}
