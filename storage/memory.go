package storage

import (
	"context"
	"sync"

	"carlach-backend/models"
)

// MemoryRepository keeps the collection in process memory. Lifetime equals
// process lifetime; everything is lost on restart.
type MemoryRepository struct {
	mu   sync.Mutex
	list []models.Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slotTaken(r.list, appt.DateTime) {
		return ErrSlotTaken
	}
	r.list = append(r.list, *appt)
	return nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findByID(r.list, id)
	if i < 0 {
		return false, nil
	}
	r.list = append(r.list[:i], r.list[i+1:]...)
	return true, nil
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findByID(r.list, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	r.list[i].Status = status
	updated := r.list[i]
	return &updated, nil
}
