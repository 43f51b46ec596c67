package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLAdapter persists keyed records in a single two-column table:
//
//	CREATE TABLE kv_records (
//	    record_key VARCHAR(64) PRIMARY KEY,
//	    payload    MEDIUMTEXT NOT NULL
//	);
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := m.db.QueryRowContext(ctx, `
		SELECT payload FROM kv_records WHERE record_key = ?`, key,
	).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query record: %w", err)
	}

	return payload, true, nil
}

func (m *MySQLAdapter) Set(ctx context.Context, key string, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv_records (record_key, payload) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	return nil
}
