package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the SQL connection to the hosted event store.
type DB struct {
	*sql.DB
}

// Connect opens a Postgres connection via the pgx stdlib driver and verifies
// it with a ping.
func Connect(ctx context.Context, uri string) (*DB, error) {
	if uri == "" {
		return nil, fmt.Errorf("database URI is required")
	}

	db, err := sql.Open("pgx", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}
