package repository

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// nullableDecimalToValue converts a price point to a value suitable for
// SQLite storage. Absent points (present == false) are stored as NULL so
// "not offered at this volume" survives a round trip distinct from zero.
func nullableDecimalToValue(d decimal.Decimal, present bool) interface{} {
	if !present {
		return nil
	}
	return d.String()
}

// parseNullableDecimal parses a sql.NullString price cell. The second return
// value reports presence; NULL or empty means the point is not offered.
func parseNullableDecimal(s sql.NullString) (decimal.Decimal, bool, error) {
	if !s.Valid || s.String == "" {
		return decimal.Decimal{}, false, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	return d, true, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
