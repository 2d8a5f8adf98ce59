package storage

import (
	"context"
	"testing"

	"carlach-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(dateTime string) *models.Appointment {
	return &models.Appointment{
		ID:           uuid.New().String(),
		ClientName:   "Rodrigo",
		Phone:        "48999990000",
		ServiceLabel: "Lavação Básica",
		VehicleClass: models.VehicleSedan,
		DateTime:     dateTime,
		Status:       models.StatusPending,
		// Distinct per record so created_at ordering is observable.
		CreatedAt: dateTime + "Z",
	}
}

// runRepositoryContract exercises the behaviour every backend must share.
func runRepositoryContract(t *testing.T, repo Repository) {
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	first := newRecord("2026-02-10T09:00:00")
	require.NoError(t, repo.Create(ctx, first))

	// The slot is occupied now; a second booking for it must be refused.
	err = repo.Create(ctx, newRecord("2026-02-10T09:00:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	second := newRecord("2026-02-10T10:00:00")
	require.NoError(t, repo.Create(ctx, second))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	updated, err := repo.UpdateStatus(ctx, first.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	_, err = repo.UpdateStatus(ctx, "missing-id", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := repo.DeleteByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestMemoryRepositoryContract(t *testing.T) {
	runRepositoryContract(t, NewMemoryRepository())
}

func TestMemoryRepositoryListReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newRecord("2026-02-10T09:00:00")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Status = models.StatusCompleted

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, list[0].Status)
}
