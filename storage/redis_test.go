package storage

import (
	"context"
	"testing"

	"carlach-backend/config"
	"carlach-backend/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisKey = "carlach_bookings_test"

func newMiniRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	repo := NewRedisRepository(config.Config{
		RedisAddr: mr.Addr(),
		RedisKey:  testRedisKey,
	})
	return repo, mr
}

func TestRedisRepositoryContract(t *testing.T) {
	// The first List in the contract hits the missing-key path, which must
	// read as an empty collection rather than an error.
	repo, _ := newMiniRedisRepo(t)
	runRepositoryContract(t, repo)
}

func TestRedisRepositoryMalformedDocumentStartsEmpty(t *testing.T) {
	repo, mr := newMiniRedisRepo(t)
	require.NoError(t, mr.Set(testRedisKey, "{not json"))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRedisRepositoryDecodesLegacyRecords(t *testing.T) {
	repo, mr := newMiniRedisRepo(t)

	legacy := `[{
		"id": "legacy-1",
		"clientName": "Ana",
		"phone": "48988887777",
		"serviceLabel": "Lavação Premium + Cera",
		"dateTime": "2026-02-10T09:00:00",
		"notes": "Modelo: Gol | Tamanho: SUV | Total: R$ 160.00",
		"status": "pendente",
		"createdAt": "2026-02-01T08:00:00Z"
	}]`
	require.NoError(t, mr.Set(testRedisKey, legacy))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Gol", list[0].CarModel)
	assert.Equal(t, models.VehicleSUV, list[0].VehicleClass)
	assert.Equal(t, 160.0, list[0].TotalValue)
	assert.Equal(t, models.StatusPending, list[0].Status)
}
