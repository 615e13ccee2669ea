package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createProductsTable = `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL
	)`

// Open opens (or creates) the SQLite database at the given path.
// The special path ":memory:" yields a throwaway in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}

// EnsureSchema creates the products table if it does not exist yet.
func EnsureSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}
