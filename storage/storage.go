// Package storage holds the appointment repository contract and its
// interchangeable backends. The backend is picked once at process start via
// configuration; everything above this package only sees the Repository
// interface.
package storage

import (
	"context"
	"errors"
	"fmt"

	"carlach-backend/config"
	"carlach-backend/models"
)

var (
	// ErrNotFound is returned when an id does not reference a stored record.
	ErrNotFound = errors.New("appointment not found")
	// ErrSlotTaken is returned by Create when the (date, time) slot already
	// holds a booking.
	ErrSlotTaken = errors.New("time slot already booked")
)

// Repository is the storage contract every backend implements.
type Repository interface {
	// List returns all stored appointments, oldest first where the backend
	// can guarantee ordering.
	List(ctx context.Context) ([]models.Appointment, error)
	// Create persists a fully-populated appointment. It fails with
	// ErrSlotTaken when the record's slot is already booked.
	Create(ctx context.Context, appt *models.Appointment) error
	// DeleteByID removes a record and reports whether one was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)
	// UpdateStatus rewrites only the status field of an existing record and
	// returns the updated record, or ErrNotFound.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
}

// Open builds the repository selected by STORAGE_BACKEND.
func Open(cfg config.Config) (Repository, error) {
	switch cfg.StorageBackend {
	case "", "memory":
		return NewMemoryRepository(), nil
	case "file":
		return NewFileRepository(cfg.DataFile), nil
	case "redis":
		return NewRedisRepository(cfg), nil
	case "sql":
		return NewSQLRepository(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// slotTaken reports whether the collection already holds a booking occupying
// the same combined date/time as dateTime.
func slotTaken(list []models.Appointment, dateTime string) bool {
	for _, a := range list {
		if a.DateTime == dateTime {
			return true
		}
	}
	return false
}

func findByID(list []models.Appointment, id string) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}
