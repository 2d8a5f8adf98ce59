package controllers

import (
	"errors"
	"net/http"

	"carlach-backend/models"
	"carlach-backend/services"
	"carlach-backend/storage"
	"carlach-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	bookingService *services.BookingService
	statusManager  *services.StatusManager
	notifier       *services.Notifier
)

// Setup wires the controllers to their services. Called once from main and
// from controller tests.
func Setup(b *services.BookingService, m *services.StatusManager, n *services.Notifier) {
	bookingService = b
	statusManager = m
	notifier = n
}

// GetAppointments returns every stored appointment.
func GetAppointments(c *gin.Context) {
	items, err := bookingService.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list appointments", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}
	if items == nil {
		items = []models.Appointment{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateAppointment accepts a customer booking request.
func CreateAppointment(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := bookingService.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrSlotTaken):
			utils.RespondWithError(c, http.StatusConflict, "This time slot is already booked")
		default:
			utils.GetLogger().Error("failed to save appointment", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save appointment")
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}

type deleteAppointmentInput struct {
	ID string `json:"id"`
}

// DeleteAppointment removes a booking; the id comes from the query string or
// the request body.
func DeleteAppointment(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		var input deleteAppointmentInput
		if err := c.ShouldBindJSON(&input); err == nil {
			id = input.ID
		}
	}
	if id == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Provide the id to delete (?id=...)")
		return
	}

	removed, err := bookingService.Delete(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("failed to delete appointment", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type updateStatusInput struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus applies a staff status transition.
func UpdateAppointmentStatus(c *gin.Context) {
	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := statusManager.ApplyStatus(c.Request.Context(), input.ID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		default:
			utils.GetLogger().Error("failed to update status", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	c.JSON(http.StatusOK, appt)
}
