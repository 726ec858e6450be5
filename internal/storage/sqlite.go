package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Store implements the Storage interface using SQLite
type Store struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better write behavior
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// One live connection for the process; SQLite wants a single writer
	// and the workflows rely on strictly serialized transactions.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewStore opens the database at dbPath and bootstraps the schema.
func NewStore(dbPath string) (*Store, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginTx starts a new transaction
func (s *Store) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx, store: s}, nil
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// querier returns the DB querier
func (s *Store) querier() querier {
	return s.db
}

// storeTx wraps a SQL transaction
type storeTx struct {
	tx    *sql.Tx
	store *Store
}

func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}

// querier returns the transaction querier
func (t *storeTx) querier() querier {
	return t.tx
}

func (t *storeTx) Close() error {
	// Transactions don't close the underlying connection
	return nil
}

func (t *storeTx) BeginTx(ctx context.Context) (Tx, error) {
	// SQLite does not support true nested transactions. Returning an
	// error prevents accidental misuse; add savepoints here if they are
	// ever needed.
	return nil, errors.New("nested transactions not supported")
}
