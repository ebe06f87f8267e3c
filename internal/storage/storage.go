// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package storage persists analysis results so users can review past
// document analyses.
package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexiscan/internal/engine"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("analysis record not found")

// Record is a stored document analysis.
type Record struct {
	ID           uuid.UUID             `json:"id"`
	UserID       uuid.UUID             `json:"userId"`
	Filename     string                `json:"filename"`
	DocumentType string                `json:"documentType"`
	Result       engine.AnalysisResult `json:"result"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// Store persists analysis records.
type Store interface {
	Save(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStore is an in-memory Store used when no database is configured
// and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]*Record)}
}

func (s *MemoryStore) Save(ctx context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	stored := *record
	s.records[record.ID] = &stored
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *MemoryStore) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*Record
	for _, record := range s.records {
		if record.UserID == userID {
			copied := *record
			records = append(records, &copied)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if offset > 0 {
		if offset >= len(records) {
			return []*Record{}, nil
		}
		records = records[offset:]
	}
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	return records, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}
