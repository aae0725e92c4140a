package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/db"
	"github.com/brimline/capquote/internal/domain"
)

// SQLitePriceRowRepo implements PriceRowRepo over the price_rows table.
type SQLitePriceRowRepo struct {
	db db.DBTX
}

// NewSQLitePriceRowRepo creates a new SQLitePriceRowRepo.
func NewSQLitePriceRowRepo(dbtx db.DBTX) *SQLitePriceRowRepo {
	return &SQLitePriceRowRepo{db: dbtx}
}

const priceRowColumns = `name, category, price_48, price_144, price_576, price_1152, price_2880, price_10000, price_20000`

func (r *SQLitePriceRowRepo) Upsert(ctx context.Context, row domain.PriceRow) error {
	query := `INSERT OR REPLACE INTO price_rows (` + priceRowColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{row.Name, string(row.Category)}
	for _, bp := range domain.Breakpoints {
		p, ok := row.Prices[bp]
		args = append(args, nullableDecimalToValue(p, ok))
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting price row %q: %w", row.Name, err)
	}
	return nil
}

func (r *SQLitePriceRowRepo) Get(ctx context.Context, category domain.Category, name string) (*domain.PriceRow, error) {
	query := `SELECT ` + priceRowColumns + ` FROM price_rows
		WHERE category = ? AND name = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, string(category), name)
	pr, err := scanPriceRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading price row %q: %w", name, err)
	}
	return pr, nil
}

func (r *SQLitePriceRowRepo) ListByCategory(ctx context.Context, category domain.Category) ([]domain.PriceRow, error) {
	query := `SELECT ` + priceRowColumns + ` FROM price_rows WHERE category = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("listing price rows for %s: %w", category, err)
	}
	defer rows.Close()
	return collectPriceRows(rows)
}

func (r *SQLitePriceRowRepo) ListAll(ctx context.Context) ([]domain.PriceRow, error) {
	query := `SELECT ` + priceRowColumns + ` FROM price_rows ORDER BY category, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing price rows: %w", err)
	}
	defer rows.Close()
	return collectPriceRows(rows)
}

func (r *SQLitePriceRowRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM price_rows`); err != nil {
		return fmt.Errorf("clearing price rows: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPriceRow(s rowScanner) (*domain.PriceRow, error) {
	var (
		name, category string
		cells          [7]sql.NullString
	)
	if err := s.Scan(&name, &category,
		&cells[0], &cells[1], &cells[2], &cells[3], &cells[4], &cells[5], &cells[6]); err != nil {
		return nil, err
	}

	pr := &domain.PriceRow{
		Name:     name,
		Category: domain.Category(category),
		Prices:   make(map[int]decimal.Decimal, len(domain.Breakpoints)),
	}
	for i, bp := range domain.Breakpoints {
		d, present, err := parseNullableDecimal(cells[i])
		if err != nil {
			return nil, fmt.Errorf("price row %q at breakpoint %d: %w", name, bp, err)
		}
		if present {
			pr.Prices[bp] = d
		}
	}
	return pr, nil
}

func collectPriceRows(rows *sql.Rows) ([]domain.PriceRow, error) {
	var out []domain.PriceRow
	for rows.Next() {
		pr, err := scanPriceRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *pr)
	}
	return out, rows.Err()
}
