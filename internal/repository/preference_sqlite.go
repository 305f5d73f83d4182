package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

type sqlitePreference struct {
	conn *sql.DB
}

// NewSQLitePreferenceRepository expects the preferences table created by storage.SQLiteStorage.Init.
func NewSQLitePreferenceRepository(conn *sql.DB) PreferenceRepository {
	return &sqlitePreference{
		conn: conn,
	}
}

func (that *sqlitePreference) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM preferences WHERE key = ?`

	var value string

	err := that.conn.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperror.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't find preference: %w", err)
	}

	return value, nil
}

func (that *sqlitePreference) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := that.conn.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("can't save preference: %w", err)
	}

	return nil
}
