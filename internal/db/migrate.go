package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS price_rows (
		name       TEXT NOT NULL,
		category   TEXT NOT NULL
		           CHECK(category IN ('base_product','customization','premium_fabric',
		                              'premium_closure','accessory','delivery','service','mold_charge')),
		price_48    TEXT,
		price_144   TEXT,
		price_576   TEXT,
		price_1152  TEXT,
		price_2880  TEXT,
		price_10000 TEXT,
		price_20000 TEXT,
		PRIMARY KEY (category, name)
	)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id           TEXT PRIMARY KEY,
		created_at   TEXT NOT NULL,
		quantity     INTEGER NOT NULL,
		context_json TEXT NOT NULL,
		total_cost   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quote_line_items (
		quote_id     TEXT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
		line_index   INTEGER NOT NULL,
		category     TEXT NOT NULL,
		name         TEXT NOT NULL,
		unit_price   TEXT NOT NULL,
		quantity     INTEGER NOT NULL,
		total_cost   TEXT NOT NULL,
		details      TEXT NOT NULL DEFAULT '',
		baseline_48  TEXT,
		waived       INTEGER NOT NULL DEFAULT 0,
		waiver_reason TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (quote_id, line_index)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_created ON quotes(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_price_rows_category ON price_rows(category)`,
}

// Migrate runs all schema migrations. Every statement is idempotent, so the
// full list re-runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
