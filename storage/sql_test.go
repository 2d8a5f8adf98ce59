package storage

import (
	"context"
	"path/filepath"
	"testing"

	"carlach-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLRepository {
	t.Helper()
	repo, err := NewSQLRepository(filepath.Join(t.TempDir(), "carlach.db"))
	require.NoError(t, err)
	return repo
}

func TestSQLRepositoryContract(t *testing.T) {
	runRepositoryContract(t, newSQLiteRepo(t))
}

func TestSQLRepositoryUniqueIndexRefusesDoubleBooking(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newRecord("2026-02-10T09:00:00")))

	// The unique index on the slot timestamp turns the duplicate insert into
	// a constraint violation, mapped to ErrSlotTaken.
	err := repo.Create(ctx, newRecord("2026-02-10T09:00:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLRepositorySurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "carlach.db")
	ctx := context.Background()

	repo, err := NewSQLRepository(dsn)
	require.NoError(t, err)
	rec := newRecord("2026-02-10T09:00:00")
	require.NoError(t, repo.Create(ctx, rec))

	reopened, err := NewSQLRepository(dsn)
	require.NoError(t, err)
	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
	assert.Equal(t, models.StatusPending, list[0].Status)
}
