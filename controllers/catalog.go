package controllers

import (
	"net/http"

	"carlach-backend/models"
	"carlach-backend/services"
	"carlach-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetServiceCatalog returns the price list for one vehicle class, the way the
// booking form presents it.
func GetServiceCatalog(c *gin.Context) {
	vehicleClass := c.DefaultQuery("vehicleClass", models.VehicleSedan)
	if !models.ValidVehicleClass(vehicleClass) {
		utils.RespondWithError(c, http.StatusBadRequest, "vehicleClass must be sedan, suv or caminhonete")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicleClass": vehicleClass,
		"services":     services.AvailableServices(vehicleClass),
		"waxPrice":     services.WaxPrice(vehicleClass),
	})
}
