package domain

import (
	"strings"
	"unicode"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "CAR"
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
	VehicleVan        VehicleType = "VAN"
	VehicleTruck      VehicleType = "TRUCK"
	VehicleOther      VehicleType = "OTHER"
)

var vehicleAliases = map[string]VehicleType{
	"CAR":        VehicleCar,
	"MOTORCYCLE": VehicleMotorcycle,
	"MOTO":       VehicleMotorcycle,
	"MOTORBIKE":  VehicleMotorcycle,
	"VAN":        VehicleVan,
	"PICKUP":     VehicleVan,
	"TRUCK":      VehicleTruck,
	"OTHER":      VehicleOther,
}

// ParseVehicleType accepts the canonical names case-insensitively plus a
// few common aliases.
func ParseVehicleType(s string) (VehicleType, bool) {
	vt, ok := vehicleAliases[strings.ToUpper(strings.TrimSpace(s))]
	return vt, ok
}

func (v VehicleType) IsMotorcycle() bool { return v == VehicleMotorcycle }

// NormalizePlate returns the canonical plate: upper case with whitespace,
// dashes and dots removed. Every uniqueness check and lookup goes through it.
func NormalizePlate(plate string) string {
	var b strings.Builder
	b.Grow(len(plate))
	for _, r := range plate {
		switch {
		case unicode.IsSpace(r), r == '-', r == '.':
			continue
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
