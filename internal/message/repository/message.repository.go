package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"demoapps/pkg/logger"
)

//go:embed schema.sql
var schema string

// Opener returns a new database handle. Each repository call opens one and
// closes it before returning; nothing is pooled across calls.
type Opener func() (*sql.DB, error)

type MessageRepository struct {
	Path string
	open Opener
}

func NewMessageRepository(path string, open Opener) *MessageRepository {
	return &MessageRepository{Path: path, open: open}
}

func (r *MessageRepository) withDB(fn func(db *sql.DB) error) error {
	db, err := r.open()
	if err != nil {
		logger.Sugar.Errorf("Failed to open message database %s: %v", r.Path, err)
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Sugar.Warnf("Failed to close message database %s: %v", r.Path, cerr)
		}
	}()
	return fn(db)
}

func (r *MessageRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return r.withDB(func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}

// InitializeSchema runs the DDL script. The script only creates what is
// missing, so running it again keeps existing messages.
func (r *MessageRepository) InitializeSchema(ctx context.Context) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		logger.Sugar.Errorf("Failed to initialize schema in %s: %v", r.Path, err)
	}
	return err
}

// EnsureDir creates the directory holding the database file.
func (r *MessageRepository) EnsureDir() error {
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		logger.Sugar.Errorf("Failed to create directory for %s: %v", r.Path, err)
		return err
	}
	return nil
}

// EnsureReady creates the directory holding the database file and, when the
// file does not exist yet, initializes the schema. It runs once at startup.
func (r *MessageRepository) EnsureReady(ctx context.Context) error {
	if err := r.EnsureDir(); err != nil {
		return err
	}
	_, err := os.Stat(r.Path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		logger.Sugar.Errorf("Failed to stat %s: %v", r.Path, err)
		return err
	}
	logger.Sugar.Infof("Database %s not found, initializing schema", r.Path)
	return r.InitializeSchema(ctx)
}

// ListMessages returns every stored text in insertion order.
func (r *MessageRepository) ListMessages(ctx context.Context) ([]string, error) {
	messages := []string{}
	err := r.withDB(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, "SELECT text FROM messages ORDER BY id")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var text string
			if err := rows.Scan(&text); err != nil {
				return err
			}
			messages = append(messages, text)
		}
		return rows.Err()
	})
	if err != nil {
		logger.Sugar.Errorf("Failed to list messages: %v", err)
		return nil, err
	}
	return messages, nil
}

// AddMessage stores text verbatim; binding is the only protection applied.
func (r *MessageRepository) AddMessage(ctx context.Context, text string) error {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO messages (text) VALUES (?)", text)
		return err
	})
	if err != nil {
		logger.Sugar.Errorf("Failed to add message: %v", err)
	}
	return err
}
