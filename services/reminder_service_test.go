package services

import (
	"context"
	"testing"
	"time"

	"carlach-backend/models"
	"carlach-backend/storage"
	"carlach-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWithStatus(t *testing.T, repo storage.Repository, dateTime, status string) {
	t.Helper()
	err := repo.Create(context.Background(), &models.Appointment{
		ID:           uuid.New().String(),
		ClientName:   "Ana",
		Phone:        "48999990000",
		ServiceLabel: "Lavação Básica",
		DateTime:     dateTime,
		Status:       status,
	})
	require.NoError(t, err)
}

func TestSendDailyRemindersTargetsTomorrowsConfirmed(t *testing.T) {
	repo := storage.NewMemoryRepository()
	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)
	dayAfter := time.Now().AddDate(0, 0, 2).Format(utils.DateLayout)

	seedWithStatus(t, repo, tomorrow+"T09:00:00", models.StatusConfirmed)
	seedWithStatus(t, repo, tomorrow+"T10:00:00", models.StatusPending)
	seedWithStatus(t, repo, dayAfter+"T09:00:00", models.StatusConfirmed)

	dispatcher := newFakeDispatcher()
	NewReminderService(repo, dispatcher).SendDailyReminders(context.Background())

	o := dispatcher.wait(t)
	assert.Equal(t, NotifyReminder, o.Kind)
	assert.Contains(t, o.Message, "amanhã")
	dispatcher.expectNone(t)
}
