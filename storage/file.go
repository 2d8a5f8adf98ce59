package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"carlach-backend/models"
	"carlach-backend/utils"

	"go.uber.org/zap"
)

// FileRepository persists the whole collection in a single JSON file. Every
// write rewrites the entire file; an interrupted rewrite can truncate it.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) load() []models.Appointment {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.GetLogger().Warn("failed to read appointments file",
				zap.String("path", r.path), zap.Error(err))
		}
		return []models.Appointment{}
	}

	var list []models.Appointment
	if err := json.Unmarshal(raw, &list); err != nil {
		// A malformed file degrades to an empty collection rather than
		// blocking the counter staff.
		utils.GetLogger().Warn("appointments file is malformed, starting empty",
			zap.String("path", r.path), zap.Error(err))
		return []models.Appointment{}
	}

	for i := range list {
		list[i].ApplyLegacyNotes()
		list[i].Status = models.NormalizeStatus(list[i].Status)
	}
	return list
}

func (r *FileRepository) save(list []models.Appointment) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o644)
}

func (r *FileRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

func (r *FileRepository) Create(ctx context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	if slotTaken(list, appt.DateTime) {
		return ErrSlotTaken
	}
	list = append(list, *appt)
	return r.save(list)
}

func (r *FileRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	i := findByID(list, id)
	if i < 0 {
		return false, nil
	}
	list = append(list[:i], list[i+1:]...)
	if err := r.save(list); err != nil {
		return false, err
	}
	return true, nil
}

func (r *FileRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.load()
	i := findByID(list, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	list[i].Status = status
	if err := r.save(list); err != nil {
		return nil, err
	}
	updated := list[i]
	return &updated, nil
}
