package storage

import (
	"context"
	"errors"
	"strings"

	"carlach-backend/models"
	"carlach-backend/utils"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLRepository is the transactional backend. The unique index on the slot
// timestamp makes double-booking a storage-level constraint violation instead
// of a check-then-act race.
type SQLRepository struct {
	db *gorm.DB
}

func NewSQLRepository(dsn string) (*SQLRepository, error) {
	db, err := connect(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		return nil, err
	}
	return &SQLRepository{db: db}, nil
}

func connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		utils.GetLogger().Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	utils.GetLogger().Info("using SQLite for local development: " + dsn)
	return gorm.Open(gormsqlite.Open(dsn), cfg)
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var list []models.Appointment
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SQLRepository) Create(ctx context.Context, appt *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *SQLRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&appt).Update("status", status).Error; err != nil {
		return nil, err
	}
	appt.Status = status
	return &appt, nil
}
