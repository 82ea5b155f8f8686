package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkwash/internal/domain"
	"parkwash/internal/domain/agreement"
	"parkwash/internal/domain/rate"
	"parkwash/internal/domain/subscription"
	"parkwash/internal/pkg/apperror"
)

var entry = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func activeRate(vt domain.VehicleType, rt rate.Type, price int64) *rate.Rate {
	return &rate.Rate{ID: 1, VehicleType: vt, RateType: rt, Price: price, IsActive: true}
}

func stay(d time.Duration, rt rate.Type) Input {
	return Input{
		Plate:       "ABC123",
		VehicleType: domain.VehicleCar,
		EntryTime:   entry,
		ExitTime:    entry.Add(d),
		RateType:    rt,
	}
}

func TestComputeRoundsUnitsUp(t *testing.T) {
	cases := []struct {
		name  string
		d     time.Duration
		rt    rate.Type
		units int64
	}{
		{"61 minutes by minute", 61 * time.Minute, rate.TypeMinute, 61},
		{"61 minutes and a second", 61*time.Minute + time.Second, rate.TypeMinute, 62},
		{"zero stay bills one unit", 0, rate.TypeMinute, 1},
		{"61 minutes by hour", 61 * time.Minute, rate.TypeHour, 2},
		{"exactly one hour", time.Hour, rate.TypeHour, 1},
		{"25 hours by day", 25 * time.Hour, rate.TypeDay, 2},
		{"31 days by month", 31 * 24 * time.Hour, rate.TypeMonth, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Compute(stay(tc.d, tc.rt), Pricing{Rate: activeRate(domain.VehicleCar, tc.rt, 10)})
			require.NoError(t, err)
			assert.Equal(t, tc.units, c.Units)
			assert.Equal(t, tc.units*10, c.Total)
		})
	}
}

func TestComputeMissingRateIsConfigurationError(t *testing.T) {
	_, err := Compute(stay(time.Hour, rate.TypeHour), Pricing{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRateNotConfigured))
	assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))

	inactive := activeRate(domain.VehicleCar, rate.TypeHour, 100)
	inactive.IsActive = false
	_, err = Compute(stay(time.Hour, rate.TypeHour), Pricing{Rate: inactive})
	assert.True(t, errors.Is(err, ErrRateNotConfigured))
}

func TestComputeAgreementDiscount(t *testing.T) {
	p := Pricing{
		Rate:      activeRate(domain.VehicleCar, rate.TypeHour, 1000),
		Agreement: &agreement.Agreement{ID: 3, ParkingDiscountPct: 50, IsActive: true},
	}
	c, err := Compute(stay(time.Hour, rate.TypeHour), p)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.Base)
	assert.Equal(t, int64(500), c.Total)
	require.NotNil(t, c.AgreementID)
	assert.Equal(t, int64(3), *c.AgreementID)

	p.Agreement.IsActive = false
	c, err = Compute(stay(time.Hour, rate.TypeHour), p)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.Total)
}

func TestComputeSubscriptionZeroesParking(t *testing.T) {
	p := Pricing{
		Rate:         activeRate(domain.VehicleCar, rate.TypeMinute, 50),
		Agreement:    &agreement.Agreement{ID: 3, ParkingDiscountPct: 10, IsActive: true},
		Subscription: &subscription.Subscription{ID: 9, IsActive: true},
	}
	c, err := Compute(stay(72*time.Hour, rate.TypeMinute), p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.ParkingAmount)
	assert.Equal(t, int64(0), c.Total)
	assert.Nil(t, c.AgreementID)
	require.NotNil(t, c.SubscriptionID)
}

func TestComputeHelmets(t *testing.T) {
	in := stay(30*time.Minute, rate.TypeHour)
	in.VehicleType = domain.VehicleMotorcycle
	in.HelmetCount = 2

	p := Pricing{
		Rate:       activeRate(domain.VehicleMotorcycle, rate.TypeHour, 300),
		HelmetRate: activeRate(domain.VehicleMotorcycle, rate.TypeHelmet, 100),
	}
	c, err := Compute(in, p)
	require.NoError(t, err)
	assert.Equal(t, int64(200), c.HelmetCharge)
	assert.Equal(t, int64(500), c.Total)

	// helmets still charged under a subscription
	p.Subscription = &subscription.Subscription{ID: 1, IsActive: true}
	c, err = Compute(in, p)
	require.NoError(t, err)
	assert.Equal(t, int64(200), c.Total)

	_, err = Compute(in, Pricing{Rate: p.Rate})
	assert.True(t, errors.Is(err, ErrHelmetRateMissing))
}

func TestComputeIgnoresHelmetsOnCars(t *testing.T) {
	in := stay(time.Hour, rate.TypeHour)
	in.HelmetCount = 3

	c, err := Compute(in, Pricing{Rate: activeRate(domain.VehicleCar, rate.TypeHour, 400)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.HelmetCharge)
	assert.Equal(t, int64(400), c.Total)
}

func TestComputeRejectsHelmetRateType(t *testing.T) {
	_, err := Compute(stay(time.Hour, rate.TypeHelmet), Pricing{Rate: activeRate(domain.VehicleCar, rate.TypeHelmet, 1)})
	assert.True(t, errors.Is(err, ErrInvalidRateType))
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, int64(500), ApplyDiscount(1000, 50))
	assert.Equal(t, int64(0), ApplyDiscount(1000, 100))
	assert.Equal(t, int64(1000), ApplyDiscount(1000, 0))
	assert.Equal(t, int64(0), ApplyDiscount(1000, 150))
	assert.Equal(t, int64(1000), ApplyDiscount(1000, -20))
	assert.Equal(t, int64(670), ApplyDiscount(1000, 33))
	assert.Equal(t, int64(2), ApplyDiscount(3, 50))
}
