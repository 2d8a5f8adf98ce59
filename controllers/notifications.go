package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNotifications returns the recent dispatch outcomes, newest first, so
// staff can see which customers were actually reached.
func GetNotifications(c *gin.Context) {
	outcomes := notifier.RecentOutcomes()
	// newest first
	for i, j := 0, len(outcomes)-1; i < j; i, j = i+1, j-1 {
		outcomes[i], outcomes[j] = outcomes[j], outcomes[i]
	}
	c.JSON(http.StatusOK, gin.H{"notifications": outcomes})
}
