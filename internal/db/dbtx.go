package db

import (
	"context"
	"database/sql"
)

// DBTX is the statement surface shared by *sql.DB and *sql.Tx. The price-row
// and quote repositories are written against it, so the same repository code
// serves plain reads on the database handle and writes inside a UnitOfWork
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Both database/sql handle types must keep satisfying DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
