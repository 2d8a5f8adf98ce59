package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Status lifecycle values. Every new appointment starts as pending and is
// moved by staff action only.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// Vehicle classes affecting price.
const (
	VehicleSedan       = "sedan"
	VehicleSUV         = "suv"
	VehicleCaminhonete = "caminhonete"
)

// Appointment is the durable, backend-agnostic booking record.
type Appointment struct {
	ID           string  `json:"id" gorm:"type:varchar(64);primaryKey"`
	ClientName   string  `json:"clientName" gorm:"not null"`
	Phone        string  `json:"phone" gorm:"not null"`
	CarModel     string  `json:"carModel"`
	VehicleClass string  `json:"vehicleClass" gorm:"type:varchar(20)"`
	ServiceLabel string  `json:"serviceLabel" gorm:"not null"`
	WaxApplied   bool    `json:"waxApplied"`
	// Combined calendar date and time-of-day; the pair identifies the slot,
	// so the unique index is what keeps two bookings out of the same slot.
	DateTime   string  `json:"dateTime" gorm:"type:varchar(19);uniqueIndex;not null"`
	Notes      string  `json:"notes" gorm:"type:text"`
	TotalValue float64 `json:"totalValue" gorm:"type:decimal(10,2);default:0.0"`
	Status     string  `json:"status" gorm:"type:varchar(20);default:pending"`
	CreatedAt  string  `json:"createdAt" gorm:"type:varchar(35)"`
}

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// NormalizeStatus maps absent or unrecognised status values to pending.
func NormalizeStatus(s string) string {
	if ValidStatus(s) {
		return s
	}
	return StatusPending
}

// ValidVehicleClass reports whether s is one of the three priced classes.
func ValidVehicleClass(s string) bool {
	switch s {
	case VehicleSedan, VehicleSUV, VehicleCaminhonete:
		return true
	}
	return false
}

// Legacy notes encoding. Records written by the old booking form carry the
// vehicle model, vehicle class and computed total embedded in the free-text
// notes field as "Modelo: X | Tamanho: SEDAN | Total: R$ 123.45".
var (
	notesModelRe = regexp.MustCompile(`(?i)Modelo:\s*([^|]+)`)
	notesSizeRe  = regexp.MustCompile(`(?i)Tamanho:\s*([A-Za-z]+)`)
	notesTotalRe = regexp.MustCompile(`(?i)Total:\s*R\$\s*([0-9]+[.,]?[0-9]*)`)
)

// DecodeNotes reconstructs the structured fields out of a legacy notes value.
// The reconstruction is best-effort: a malformed encoding yields "-" for the
// model, sedan for the class and zero for the total.
func DecodeNotes(notes string) (carModel, vehicleClass string, total float64) {
	carModel = "-"
	vehicleClass = VehicleSedan

	if m := notesModelRe.FindStringSubmatch(notes); m != nil {
		carModel = strings.TrimSpace(m[1])
	}
	if m := notesSizeRe.FindStringSubmatch(notes); m != nil {
		s := strings.ToLower(m[1])
		if ValidVehicleClass(s) {
			vehicleClass = s
		}
	}
	if m := notesTotalRe.FindStringSubmatch(notes); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			total = v
		}
	}
	return carModel, vehicleClass, total
}

// EncodeNotes renders the legacy fragment so dashboards built against the old
// encoding keep working.
func EncodeNotes(carModel, vehicleClass string, total float64) string {
	return fmt.Sprintf("Modelo: %s | Tamanho: %s | Total: R$ %.2f",
		carModel, strings.ToUpper(vehicleClass), total)
}

// ApplyLegacyNotes fills empty structured fields from the notes encoding, for
// records imported from collections written by the old client.
func (a *Appointment) ApplyLegacyNotes() {
	if a.CarModel != "" && a.VehicleClass != "" {
		return
	}
	carModel, vehicleClass, total := DecodeNotes(a.Notes)
	if a.CarModel == "" {
		a.CarModel = carModel
	}
	if a.VehicleClass == "" {
		a.VehicleClass = vehicleClass
	}
	if a.TotalValue == 0 {
		a.TotalValue = total
	}
}
