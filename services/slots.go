// services/slots.go
package services

import (
	"context"

	"carlach-backend/storage"
	"carlach-backend/utils"
)

// ScheduleTimes is the fixed daily schedule: nine hourly slots with a midday
// gap. Slot identity is exact time-of-day string equality; bookings have no
// duration semantics.
var ScheduleTimes = []string{
	"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// SlotResolver computes free and booked slots for a calendar date. It is
// read-only: checking availability reserves nothing.
type SlotResolver struct {
	repo storage.Repository
}

func NewSlotResolver(repo storage.Repository) *SlotResolver {
	return &SlotResolver{repo: repo}
}

// BookedTimes returns the time-of-day of every booking on the given date.
func (s *SlotResolver) BookedTimes(ctx context.Context, date string) ([]string, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var booked []string
	for _, a := range list {
		if utils.DatePart(a.DateTime) == date {
			booked = append(booked, utils.TimePart(a.DateTime))
		}
	}
	return booked, nil
}

// AvailableSlots returns the schedule minus the booked times for the date.
func (s *SlotResolver) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	booked, err := s.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := make([]string, 0, len(ScheduleTimes))
	for _, t := range ScheduleTimes {
		if !taken[t] {
			available = append(available, t)
		}
	}
	return available, nil
}

// IsTimeAvailable reports whether a single slot is still free.
func (s *SlotResolver) IsTimeAvailable(ctx context.Context, date, timeOfDay string) (bool, error) {
	booked, err := s.BookedTimes(ctx, date)
	if err != nil {
		return false, err
	}
	for _, t := range booked {
		if t == timeOfDay {
			return false, nil
		}
	}
	return true, nil
}
