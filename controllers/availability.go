package controllers

import (
	"net/http"
	"time"

	"carlach-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAvailability returns the free and booked slots for one calendar date.
// Checking availability reserves nothing; creation re-validates the slot.
func GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Provide the date to check (?date=YYYY-MM-DD)")
		return
	}
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	slots := bookingService.Slots()
	booked, err := slots.BookedTimes(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("failed to resolve booked slots", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}
	available, err := slots.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("failed to resolve available slots", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}

	if booked == nil {
		booked = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"available": available,
		"booked":    booked,
	})
}
