package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the SQLite database at dbPath and verifies the
// connection. The glebarez driver registers itself as "sqlite".
func Connect(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Initialize enables foreign keys and creates the schema if absent.
// Uniqueness of usernames and the blog->owner reference are enforced
// here, at the store level, so a violation is distinguishable from a
// plain not-found.
func Initialize(pool *sqlx.DB) error {
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	userSchema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE CHECK (length(username) >= 3),
		name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL
	);`
	if _, err := pool.Exec(userSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	blogSchema := `
	CREATE TABLE IF NOT EXISTS blogs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		author TEXT NOT NULL DEFAULT '',
		likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
		owner_id TEXT NOT NULL REFERENCES users(id)
	);`
	if _, err := pool.Exec(blogSchema); err != nil {
		return fmt.Errorf("failed to create blogs table: %w", err)
	}

	return nil
}
