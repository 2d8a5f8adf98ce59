// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carlach-backend/models"
	"carlach-backend/storage"
	"carlach-backend/utils"

	"github.com/google/uuid"
)

// ErrValidation marks user-correctable input errors; the HTTP layer maps it
// to a 400 and never retries.
var ErrValidation = errors.New("validation failed")

// CreateBookingInput is the appointment request a customer submits.
type CreateBookingInput struct {
	ClientName   string `json:"clientName"`
	Phone        string `json:"phone"`
	DateTime     string `json:"dateTime"`
	ServiceLabel string `json:"serviceLabel"`
	CarModel     string `json:"carModel"`
	VehicleClass string `json:"vehicleClass"`
	WaxApplied   bool   `json:"waxApplied"`
	Notes        string `json:"notes"`
}

// BookingService composes slot resolution, pricing and the repository for the
// two real use cases: creating a request and listing the book.
type BookingService struct {
	repo  storage.Repository
	slots *SlotResolver
}

func NewBookingService(repo storage.Repository) *BookingService {
	return &BookingService{repo: repo, slots: NewSlotResolver(repo)}
}

func (s *BookingService) Slots() *SlotResolver {
	return s.slots
}

func (s *BookingService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.List(ctx)
}

// Create validates the request, checks the slot, computes the total
// server-side and persists the record. The repository re-checks the slot
// under its own write lock, so the loser of a race gets ErrSlotTaken instead
// of a silent double-booking.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Appointment, error) {
	if input.ClientName == "" || input.Phone == "" || input.DateTime == "" || input.ServiceLabel == "" {
		return nil, fmt.Errorf("%w: clientName, phone, dateTime and serviceLabel are required", ErrValidation)
	}
	if !utils.ValidatePhone(input.Phone) {
		return nil, fmt.Errorf("%w: invalid phone number format", ErrValidation)
	}
	if _, err := utils.ParseDateTime(input.DateTime); err != nil {
		return nil, fmt.Errorf("%w: dateTime must be formatted as %s", ErrValidation, utils.DateTimeLayout)
	}

	timeOfDay := utils.TimePart(input.DateTime)
	if !scheduledTime(timeOfDay) {
		return nil, fmt.Errorf("%w: %s is outside the daily schedule", ErrValidation, timeOfDay)
	}

	vehicleClass := input.VehicleClass
	if vehicleClass == "" {
		vehicleClass = models.VehicleSedan
	}
	if !models.ValidVehicleClass(vehicleClass) {
		return nil, fmt.Errorf("%w: unknown vehicle class %q", ErrValidation, vehicleClass)
	}

	free, err := s.slots.IsTimeAvailable(ctx, utils.DatePart(input.DateTime), timeOfDay)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, storage.ErrSlotTaken
	}

	hasWax := input.WaxApplied || HasWaxLabel(input.ServiceLabel)
	total := CalculateTotal(BaseService(input.ServiceLabel), vehicleClass, hasWax)

	notes := input.Notes
	if notes == "" {
		notes = models.EncodeNotes(input.CarModel, vehicleClass, total)
	}

	appt := &models.Appointment{
		ID:           uuid.New().String(),
		ClientName:   input.ClientName,
		Phone:        input.Phone,
		CarModel:     input.CarModel,
		VehicleClass: vehicleClass,
		ServiceLabel: input.ServiceLabel,
		WaxApplied:   hasWax,
		DateTime:     input.DateTime,
		Notes:        notes,
		TotalValue:   total,
		Status:       models.StatusPending,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Delete removes an appointment by id; false means the id was unknown.
func (s *BookingService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteByID(ctx, id)
}

func scheduledTime(timeOfDay string) bool {
	for _, t := range ScheduleTimes {
		if t == timeOfDay {
			return true
		}
	}
	return false
}
