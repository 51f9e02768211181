package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/esgbuddy/esgbuddy/internal/platform"
)

const defaultDatabaseURL = "postgres://localhost:5432/esgbuddy?sslmode=disable"

// openDatabase connects to DATABASE_URL and applies pending migrations.
func openDatabase(ctx context.Context) (*sql.DB, error) {
	url := firstNonEmpty(os.Getenv("DATABASE_URL"), defaultDatabaseURL)

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := platform.AutoMigrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
