// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexiscan/internal/engine"
)

func sampleRecord(userID uuid.UUID) *Record {
	return &Record{
		UserID:       userID,
		Filename:     "agreement.txt",
		DocumentType: "service_agreement",
		Result: engine.AnalysisResult{
			DocumentType:    "service_agreement",
			ConfidenceScore: 85,
			Summary:         "A service agreement summary",
		},
	}
}

func TestMemoryStore_SaveAssignsIDAndTimestamp(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := sampleRecord(uuid.New())
	require.NoError(t, store.Save(ctx, record))

	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestMemoryStore_GetByID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := sampleRecord(uuid.New())
	require.NoError(t, store.Save(ctx, record))

	got, err := store.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "service_agreement", got.DocumentType)
	assert.Equal(t, 85, got.Result.ConfidenceScore)

	_, err = store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := sampleRecord(uuid.New())
	require.NoError(t, store.Save(ctx, record))

	got, err := store.GetByID(ctx, record.ID)
	require.NoError(t, err)
	got.Filename = "mutated.txt"

	again, err := store.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "agreement.txt", again.Filename)
}

func TestMemoryStore_ListByUserID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		record := sampleRecord(userID)
		record.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(ctx, record))
	}
	// Another user's record must not leak in.
	require.NoError(t, store.Save(ctx, sampleRecord(uuid.New())))

	records, err := store.ListByUserID(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i := 1; i < len(records); i++ {
		assert.True(t, !records[i].CreatedAt.After(records[i-1].CreatedAt),
			"records must be sorted newest first")
	}
}

func TestMemoryStore_ListPagination(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		record := sampleRecord(userID)
		record.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(ctx, record))
	}

	page, err := store.ListByUserID(ctx, userID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = store.ListByUserID(ctx, userID, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, err = store.ListByUserID(ctx, userID, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := sampleRecord(uuid.New())
	require.NoError(t, store.Save(ctx, record))

	require.NoError(t, store.Delete(ctx, record.ID))
	_, err := store.GetByID(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, record.ID), ErrNotFound)
}

func TestListByUserQuery_Pagination(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		limit    int
		offset   int
		wantSQL  []string
		skipSQL  []string
		wantArgs int
	}{
		{
			name:     "no pagination",
			skipSQL:  []string{"LIMIT", "OFFSET"},
			wantArgs: 1,
		},
		{
			name:     "limit only",
			limit:    10,
			wantSQL:  []string{"LIMIT $2"},
			skipSQL:  []string{"OFFSET"},
			wantArgs: 2,
		},
		{
			name:     "limit and offset",
			limit:    10,
			offset:   20,
			wantSQL:  []string{"LIMIT $2", "OFFSET $3"},
			wantArgs: 3,
		},
		{
			name:     "offset without limit",
			offset:   20,
			wantSQL:  []string{"OFFSET $2"},
			skipSQL:  []string{"LIMIT"},
			wantArgs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listByUserQuery(userID, tt.limit, tt.offset)

			for _, clause := range tt.wantSQL {
				assert.Contains(t, query, clause)
			}
			for _, clause := range tt.skipSQL {
				assert.NotContains(t, query, clause)
			}
			require.Len(t, args, tt.wantArgs)
			assert.Equal(t, userID, args[0])
		})
	}
}
