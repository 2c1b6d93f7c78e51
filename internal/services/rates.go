package services

import "shipment-service/internal/domain"

// Policy constants for the price calculator.
const (
	// Flat overage rate per kg above the package type's weight limit.
	overageRatePerKg = 5.00
	// Surcharge applied when a destination is in neither the live catalog
	// nor the fallback table below.
	defaultDistanceCharge = 40.00
	// Flat 12% VAT.
	taxRate = 0.12
)

// Fallback distance surcharges per destination department, consulted when
// the department record carries no delivery base cost.
var departmentDistanceCharges = map[string]float64{
	"Guatemala":      0,
	"Sacatepéquez":   10,
	"Chimaltenango":  15,
	"Escuintla":      20,
	"Santa Rosa":     25,
	"Jalapa":         25,
	"Jutiapa":        30,
	"Sololá":         35,
	"Quetzaltenango": 40,
	"Totonicapán":    40,
	"Huehuetenango":  50,
	"San Marcos":     45,
	"Quiché":         55,
	"Baja Verapaz":   45,
	"Alta Verapaz":   50,
	"Izabal":         60,
	"Zacapa":         55,
	"Chiquimula":     50,
	"El Progreso":    35,
	"Petén":          75,
	"Retalhuleu":     45,
	"Suchitepéquez":  45,
}

// Base delivery days per destination department.
var departmentBaseDays = map[string]int{
	"Guatemala":      1,
	"Sacatepéquez":   1,
	"Chimaltenango":  2,
	"Escuintla":      2,
	"Santa Rosa":     2,
	"Jalapa":         2,
	"Jutiapa":        3,
	"El Progreso":    2,
	"Baja Verapaz":   3,
	"Sololá":         3,
	"Quetzaltenango": 3,
	"Totonicapán":    3,
	"Retalhuleu":     3,
	"Suchitepéquez":  3,
	"San Marcos":     4,
	"Huehuetenango":  4,
	"Quiché":         4,
	"Alta Verapaz":   4,
	"Izabal":         4,
	"Zacapa":         4,
	"Chiquimula":     4,
	"Petén":          5,
}

// Price multiplier per delivery speed tier. Unknown tiers price as standard.
var serviceMultipliers = map[string]float64{
	"economy":   0.8,
	"standard":  1.0,
	"express":   1.5,
	"overnight": 2.0,
}

// Day offset per delivery speed tier, applied to a department's base days.
var serviceDayModifiers = map[string]int{
	"economy":   2,
	"standard":  0,
	"express":   -1,
	"overnight": -2,
}

func serviceMultiplierFor(serviceType string) float64 {
	if m, ok := serviceMultipliers[serviceType]; ok {
		return m
	}
	return 1.0
}

// distanceChargeFor resolves the distance surcharge for a destination.
// A department's own delivery base cost wins; otherwise the fallback
// table by name, then the default surcharge.
func distanceChargeFor(dept *domain.Department) float64 {
	if dept != nil && dept.DeliveryBaseCost != nil {
		return *dept.DeliveryBaseCost
	}

	name := ""
	if dept != nil {
		name = dept.Name
	}
	if c, ok := departmentDistanceCharges[name]; ok {
		return c
	}
	return defaultDistanceCharge
}
