package controllers

import (
	"net/http"
	"time"

	"carlach-backend/models"
	"carlach-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetDashboardOverview summarises the appointment book for the staff screen:
// per-status counts, today's bookings and the revenue of completed work.
func GetDashboardOverview(c *gin.Context) {
	items, err := bookingService.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to load dashboard data", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	today := time.Now().Format(utils.DateLayout)
	counts := map[string]int{
		models.StatusPending:   0,
		models.StatusConfirmed: 0,
		models.StatusCompleted: 0,
	}
	todays := []models.Appointment{}
	var completedRevenue float64

	for _, a := range items {
		counts[models.NormalizeStatus(a.Status)]++
		if utils.DatePart(a.DateTime) == today {
			todays = append(todays, a)
		}
		if a.Status == models.StatusCompleted {
			completedRevenue += a.TotalValue
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalAppointments":  len(items),
		"statusCounts":       counts,
		"todaysAppointments": todays,
		"completedRevenue":   completedRevenue,
	})
}
