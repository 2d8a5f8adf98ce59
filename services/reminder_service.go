// services/reminder_service.go
package services

import (
	"context"
	"time"

	"carlach-backend/models"
	"carlach-backend/storage"
	"carlach-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderService sends a day-before reminder for confirmed appointments.
type ReminderService struct {
	repo     storage.Repository
	notifier Dispatcher
	cron     *cron.Cron
}

func NewReminderService(repo storage.Repository, notifier Dispatcher) *ReminderService {
	return &ReminderService{
		repo:     repo,
		notifier: notifier,
		cron:     cron.New(),
	}
}

// StartScheduler runs the reminder pass every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	s.cron.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(context.Background())
	})
	s.cron.Start()
	utils.GetLogger().Info("Reminder scheduler started")
}

// Stop halts the scheduler; pending jobs finish first.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDailyReminders notifies every confirmed appointment dated tomorrow.
func (s *ReminderService) SendDailyReminders(ctx context.Context) {
	log := utils.GetLogger()
	log.Info("Starting daily reminder processing...")

	list, err := s.repo.List(ctx)
	if err != nil {
		log.Error("Failed to fetch appointments for reminders", zap.Error(err))
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)
	sent := 0
	for _, appt := range list {
		if appt.Status != models.StatusConfirmed {
			continue
		}
		if utils.DatePart(appt.DateTime) != tomorrow {
			continue
		}
		s.notifier.Notify(NotifyReminder, appt)
		sent++
	}

	log.Info("Daily reminder processing completed", zap.Int("sent", sent))
}
