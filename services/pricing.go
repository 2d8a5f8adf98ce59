// services/pricing.go
package services

import (
	"regexp"
	"strings"

	"carlach-backend/models"
)

// WaxSuffix is appended to the service label when wax application is added.
const WaxSuffix = " + Cera"

// ServicePrice is one row of the static price table.
type ServicePrice struct {
	Name   string             `json:"name"`
	Prices map[string]float64 `json:"prices"`
}

var serviceTable = []ServicePrice{
	{
		Name: "Lavação Básica",
		Prices: map[string]float64{
			models.VehicleSedan:       60,
			models.VehicleSUV:         70,
			models.VehicleCaminhonete: 80,
		},
	},
	{
		Name: "Lavação Premium",
		Prices: map[string]float64{
			models.VehicleSedan:       90,
			models.VehicleSUV:         110,
			models.VehicleCaminhonete: 140,
		},
	},
	{
		Name: "Lavação Detalhada",
		Prices: map[string]float64{
			models.VehicleSedan:       300,
			models.VehicleSUV:         350,
			models.VehicleCaminhonete: 450,
		},
	},
}

var waxPrices = map[string]float64{
	models.VehicleSedan:       40,
	models.VehicleSUV:         50,
	models.VehicleCaminhonete: 60,
}

// GetServicePrice returns the base price for a service and vehicle class.
// An unrecognised service name yields 0 so the counter staff are never
// blocked; callers treat the zero as a quote of "ask at the counter".
func GetServicePrice(serviceName, vehicleClass string) float64 {
	for _, s := range serviceTable {
		if s.Name == serviceName {
			return s.Prices[vehicleClass]
		}
	}
	return 0
}

// CalculateTotal computes base price plus the per-class wax surcharge.
func CalculateTotal(serviceName, vehicleClass string, hasWax bool) float64 {
	total := GetServicePrice(serviceName, vehicleClass)
	if hasWax {
		total += waxPrices[vehicleClass]
	}
	return total
}

// PricedService pairs a service name with its price for one vehicle class.
type PricedService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AvailableServices lists every service with its price for the given class.
func AvailableServices(vehicleClass string) []PricedService {
	out := make([]PricedService, 0, len(serviceTable))
	for _, s := range serviceTable {
		out = append(out, PricedService{Name: s.Name, Price: s.Prices[vehicleClass]})
	}
	return out
}

// WaxPrice returns the wax surcharge for a vehicle class.
func WaxPrice(vehicleClass string) float64 {
	return waxPrices[vehicleClass]
}

var (
	waxRe       = regexp.MustCompile(`(?i)cera`)
	waxSuffixRe = regexp.MustCompile(`(?i)\s*(\+|com)?\s*cera\s*$`)
)

// HasWaxLabel reports whether a stored service label includes wax.
func HasWaxLabel(serviceLabel string) bool {
	return waxRe.MatchString(serviceLabel)
}

// BaseService strips a trailing wax mention off a stored service label, in
// any of the spellings HasWaxLabel accepts at the end of the label.
func BaseService(serviceLabel string) string {
	return strings.TrimSpace(waxSuffixRe.ReplaceAllString(serviceLabel, ""))
}
