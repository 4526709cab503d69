package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/accountsclient/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// DB is an opened storage file with its schema applied.
type DB struct {
	*SQLiteRepository
	db *sql.DB
}

func (d *DB) Close() error {
	return d.db.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite file at dsn and migrates it.
// ":memory:" gives a private, non-durable store.
func Open(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", dsn, err)
	}
	// a single connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate storage %s: %w", dsn, err)
	}

	return &DB{SQLiteRepository: NewSQLiteRepository(db), db: db}, nil
}
