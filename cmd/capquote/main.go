package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/brimline/capquote/internal/catalog"
	"github.com/brimline/capquote/internal/cli"
	"github.com/brimline/capquote/internal/db"
	"github.com/brimline/capquote/internal/extract"
	"github.com/brimline/capquote/internal/repository"
	"github.com/brimline/capquote/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local overrides; a missing .env is fine.
	_ = godotenv.Load()

	// Plain output when piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Determine DB path: env var or default ~/.capquote/capquote.db
	dbPath := os.Getenv("CAPQUOTE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".capquote", "capquote.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// First run: load the factory price book so quoting works out of the box.
	if err := seedIfEmpty(database); err != nil {
		return err
	}

	rows := repository.NewSQLitePriceRowRepo(database)
	quotes := repository.NewSQLiteQuoteRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	cache := catalog.NewCache(catalog.NewSQLSource(rows))
	observer := service.NewLogUseCaseObserver(os.Stderr)

	app := &cli.App{
		Quotes:    service.NewQuoteService(cache, uow, quotes, nil, observer),
		Catalog:   service.NewCatalogService(cache, uow, rows, database, observer),
		Extractor: extract.NewExtractor(),
	}

	return cli.NewRootCmd(app).Execute()
}

// seedIfEmpty loads the factory price book into a fresh database.
func seedIfEmpty(database *sql.DB) error {
	ctx := context.Background()
	var count int
	if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM price_rows`).Scan(&count); err != nil {
		return fmt.Errorf("checking price book: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := db.SeedPriceBook(ctx, database); err != nil {
		return fmt.Errorf("seeding price book: %w", err)
	}
	return nil
}
