package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brimline/capquote/internal/db"
	"github.com/brimline/capquote/internal/domain"
)

// SQLiteQuoteRepo implements QuoteRepo. The costing context is stored as a
// JSON document alongside the itemized lines so a quote can be re-priced
// against a newer catalog and compared with what was originally charged.
type SQLiteQuoteRepo struct {
	db db.DBTX
}

// NewSQLiteQuoteRepo creates a new SQLiteQuoteRepo.
func NewSQLiteQuoteRepo(dbtx db.DBTX) *SQLiteQuoteRepo {
	return &SQLiteQuoteRepo{db: dbtx}
}

// quoteLine pairs a line item with the category it was charged under.
type quoteLine struct {
	category domain.Category
	item     domain.CostLineItem
}

func flattenResult(r domain.CostBreakdownResult) []quoteLine {
	lines := []quoteLine{{domain.CategoryBaseProduct, r.BaseProduct}}
	for _, it := range r.Decorations {
		lines = append(lines, quoteLine{domain.CategoryCustomization, it})
	}
	for _, it := range r.Fabrics {
		lines = append(lines, quoteLine{domain.CategoryPremiumFabric, it})
	}
	if r.Closure != nil {
		lines = append(lines, quoteLine{domain.CategoryPremiumClosure, *r.Closure})
	}
	for _, it := range r.Accessories {
		lines = append(lines, quoteLine{domain.CategoryAccessory, it})
	}
	if r.Delivery != nil {
		lines = append(lines, quoteLine{domain.CategoryDelivery, *r.Delivery})
	}
	for _, it := range r.Services {
		lines = append(lines, quoteLine{domain.CategoryService, it})
	}
	for _, it := range r.MoldCharges {
		lines = append(lines, quoteLine{domain.CategoryMoldCharge, it})
	}
	return lines
}

func (r *SQLiteQuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	ctxJSON, err := json.Marshal(q.Context)
	if err != nil {
		return fmt.Errorf("encoding quote context: %w", err)
	}

	query := `INSERT INTO quotes (id, created_at, quantity, context_json, total_cost)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.CreatedAt.UTC().Format(time.RFC3339),
		q.Context.Quantity,
		string(ctxJSON),
		q.Result.TotalCost.String(),
	); err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}

	lineQuery := `INSERT INTO quote_line_items
		(quote_id, line_index, category, name, unit_price, quantity, total_cost, details, baseline_48, waived, waiver_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, line := range flattenResult(q.Result) {
		if _, err := r.db.ExecContext(ctx, lineQuery,
			q.ID,
			i,
			string(line.category),
			line.item.Name,
			line.item.UnitPrice.String(),
			line.item.Quantity,
			line.item.TotalCost.String(),
			line.item.Details,
			nullableDecimalToValue(line.item.Baseline48, !line.item.Baseline48.IsZero()),
			boolToInt(line.item.Waived),
			line.item.WaiverReason,
		); err != nil {
			return fmt.Errorf("inserting quote line %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	query := `SELECT id, created_at, context_json, total_cost FROM quotes WHERE id = ?`
	q, err := r.scanQuote(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading quote %s: %w", id, err)
	}
	if err := r.loadLines(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *SQLiteQuoteRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Quote, error) {
	query := `SELECT id, created_at, context_json, total_cost FROM quotes
		ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.Quote
	for rows.Next() {
		q, err := r.scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, q := range quotes {
		if err := r.loadLines(ctx, q); err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

func (r *SQLiteQuoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting quote %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteQuoteRepo) scanQuote(s rowScanner) (*domain.Quote, error) {
	var (
		q                           domain.Quote
		createdAt, ctxJSON, totalStr string
	)
	if err := s.Scan(&q.ID, &createdAt, &ctxJSON, &totalStr); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing quote timestamp: %w", err)
	}
	q.CreatedAt = t
	if err := json.Unmarshal([]byte(ctxJSON), &q.Context); err != nil {
		return nil, fmt.Errorf("decoding quote context: %w", err)
	}
	total, err := decimal.NewFromString(totalStr)
	if err != nil {
		return nil, fmt.Errorf("parsing quote total: %w", err)
	}
	q.Result.TotalCost = total
	q.Result.TotalUnits = q.Context.Quantity
	return &q, nil
}

func (r *SQLiteQuoteRepo) loadLines(ctx context.Context, q *domain.Quote) error {
	query := `SELECT category, name, unit_price, quantity, total_cost, details, baseline_48, waived, waiver_reason
		FROM quote_line_items WHERE quote_id = ? ORDER BY line_index`
	rows, err := r.db.QueryContext(ctx, query, q.ID)
	if err != nil {
		return fmt.Errorf("loading quote lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category, name, unitStr, totalStr, details, waiverReason string
			quantity, waived                                         int
			baseline                                                 sql.NullString
		)
		if err := rows.Scan(&category, &name, &unitStr, &quantity, &totalStr, &details, &baseline, &waived, &waiverReason); err != nil {
			return err
		}
		item := domain.CostLineItem{
			Name:         name,
			Quantity:     quantity,
			Details:      details,
			Waived:       intToBool(waived),
			WaiverReason: waiverReason,
		}
		if item.UnitPrice, err = decimal.NewFromString(unitStr); err != nil {
			return fmt.Errorf("parsing unit price for %q: %w", name, err)
		}
		if item.TotalCost, err = decimal.NewFromString(totalStr); err != nil {
			return fmt.Errorf("parsing total for %q: %w", name, err)
		}
		if b, present, err := parseNullableDecimal(baseline); err != nil {
			return fmt.Errorf("parsing baseline for %q: %w", name, err)
		} else if present {
			item.Baseline48 = b
		}
		assignLine(&q.Result, domain.Category(category), item)
	}
	return rows.Err()
}

func assignLine(r *domain.CostBreakdownResult, category domain.Category, item domain.CostLineItem) {
	switch category {
	case domain.CategoryBaseProduct:
		r.BaseProduct = item
	case domain.CategoryCustomization:
		r.Decorations = append(r.Decorations, item)
	case domain.CategoryPremiumFabric:
		r.Fabrics = append(r.Fabrics, item)
	case domain.CategoryPremiumClosure:
		r.Closure = &item
	case domain.CategoryAccessory:
		r.Accessories = append(r.Accessories, item)
	case domain.CategoryDelivery:
		r.Delivery = &item
	case domain.CategoryService:
		r.Services = append(r.Services, item)
	case domain.CategoryMoldCharge:
		r.MoldCharges = append(r.MoldCharges, item)
	}
}
