package services

import (
	"testing"

	"carlach-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal(t *testing.T) {
	assert.Equal(t, 60.0, CalculateTotal("Lavação Básica", models.VehicleSedan, false))
	assert.Equal(t, 100.0, CalculateTotal("Lavação Básica", models.VehicleSedan, true))
	assert.Equal(t, 110.0, CalculateTotal("Lavação Premium", models.VehicleSUV, false))
	assert.Equal(t, 450.0, CalculateTotal("Lavação Detalhada", models.VehicleCaminhonete, false))
	assert.Equal(t, 510.0, CalculateTotal("Lavação Detalhada", models.VehicleCaminhonete, true))
}

func TestCalculateTotalUnknownServiceIsZero(t *testing.T) {
	// Silent degradation: an unknown service quotes zero instead of failing,
	// so the counter staff are never blocked.
	assert.Equal(t, 0.0, CalculateTotal("unknown-service", models.VehicleSUV, false))
	assert.Equal(t, 0.0, GetServicePrice("Polimento", models.VehicleSedan))
}

func TestCalculateTotalUnknownVehicleClassIsZero(t *testing.T) {
	assert.Equal(t, 0.0, CalculateTotal("Lavação Básica", "motorcycle", false))
}

func TestAvailableServices(t *testing.T) {
	list := AvailableServices(models.VehicleSUV)
	assert.Len(t, list, 3)
	assert.Equal(t, "Lavação Básica", list[0].Name)
	assert.Equal(t, 70.0, list[0].Price)
	assert.Equal(t, 50.0, WaxPrice(models.VehicleSUV))
}

func TestWaxLabelHelpers(t *testing.T) {
	assert.True(t, HasWaxLabel("Lavação Básica + Cera"))
	assert.True(t, HasWaxLabel("lavação com CERA"))
	assert.False(t, HasWaxLabel("Lavação Básica"))
	assert.Equal(t, "Lavação Premium", BaseService("Lavação Premium + Cera"))
	assert.Equal(t, "Lavação Premium", BaseService("Lavação Premium"))
	// Every wax spelling the matcher accepts at the end of the label must
	// strip back to a priceable base service.
	assert.Equal(t, "Lavação Básica", BaseService("Lavação Básica com Cera"))
	assert.Equal(t, "Lavação Básica", BaseService("Lavação Básica com CERA"))
	assert.Equal(t, "Lavação Básica", BaseService("Lavação Básica Cera"))
}

func TestWaxLabelVariantKeepsBasePrice(t *testing.T) {
	assert.Equal(t, 100.0, CalculateTotal(BaseService("Lavação Básica com Cera"), models.VehicleSedan, true))
}
