// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists analysis records in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore connects to the database and ensures the schema exists.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &PostgresStore{db: pool}
	if err := store.createSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.db.Close()
}

func (s *PostgresStore) createSchema(ctx context.Context) error {
	schemaSQL := `
CREATE TABLE IF NOT EXISTS analyses (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL,
    filename VARCHAR(255) NOT NULL,
    document_type VARCHAR(50) NOT NULL,
    result JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_analyses_user_id ON analyses(user_id, created_at DESC);`

	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, record *Record) error {
	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to encode analysis result: %w", err)
	}

	query := `
		INSERT INTO analyses (user_id, filename, document_type, result)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return s.db.QueryRow(
		ctx, query,
		record.UserID,
		record.Filename,
		record.DocumentType,
		resultJSON,
	).Scan(&record.ID, &record.CreatedAt)
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	record := &Record{}
	var resultJSON []byte

	query := `
		SELECT id, user_id, filename, document_type, result, created_at
		FROM analyses
		WHERE id = $1`

	err := s.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.UserID,
		&record.Filename,
		&record.DocumentType,
		&resultJSON,
		&record.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}

	return record, nil
}

func (s *PostgresStore) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Record, error) {
	query, args := listByUserQuery(userID, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record := &Record{}
		var resultJSON []byte

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Filename,
			&record.DocumentType,
			&resultJSON,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
			return nil, fmt.Errorf("failed to decode analysis result: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// listByUserQuery builds the paginated history query. Limit and offset are
// applied independently so an offset without a limit still takes effect.
func listByUserQuery(userID uuid.UUID, limit, offset int) (string, []interface{}) {
	query := `
		SELECT id, user_id, filename, document_type, result, created_at
		FROM analyses
		WHERE user_id = $1
		ORDER BY created_at DESC`

	args := []interface{}{userID}

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return query, args
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
