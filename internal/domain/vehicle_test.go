package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	cases := map[string]string{
		"abc-123":    "ABC123",
		" abc 123 ":  "ABC123",
		"Ab.C\t12-3": "ABC123",
		"ABC123":     "ABC123",
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePlate(in), in)
	}
}

func TestParseVehicleType(t *testing.T) {
	vt, ok := ParseVehicleType(" moto ")
	assert.True(t, ok)
	assert.Equal(t, VehicleMotorcycle, vt)
	assert.True(t, vt.IsMotorcycle())

	vt, ok = ParseVehicleType("car")
	assert.True(t, ok)
	assert.False(t, vt.IsMotorcycle())

	_, ok = ParseVehicleType("spaceship")
	assert.False(t, ok)
}

func TestDateHelpers(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	// 02:00 UTC on the 10th is still the 9th in Bogotá.
	instant := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), DateOf(instant, bogota))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(instant, nil))

	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, DaysBetween(from, from.AddDate(0, 0, 5)))
	assert.Equal(t, -1, DaysBetween(from, from.AddDate(0, 0, -1)))
}
