package rate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkwash/internal/domain"
	"parkwash/internal/testutil"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db := testutil.NewDB(t, &Rate{})
	return NewService(NewRepository(db))
}

func boolPtr(v bool) *bool { return &v }

func TestCreateAndFindActive(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, RateRequest{VehicleType: "car", RateType: "minute", Price: 100})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, domain.VehicleCar, created.VehicleType)
	assert.Equal(t, TypeMinute, created.RateType)

	active, err := svc.ActiveRate(ctx, domain.VehicleCar, TypeMinute)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, created.ID, active.ID)

	missing, err := svc.ActiveRate(ctx, domain.VehicleCar, TypeHour)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestActivatingRateDeactivatesPrevious(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, RateRequest{VehicleType: "CAR", RateType: "HOUR", Price: 3000})
	require.NoError(t, err)
	second, err := svc.Create(ctx, RateRequest{VehicleType: "CAR", RateType: "HOUR", Price: 3500})
	require.NoError(t, err)

	active, err := svc.ActiveRate(ctx, domain.VehicleCar, TypeHour)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	rates, err := svc.List(ctx, "CAR")
	require.NoError(t, err)
	activeCount := 0
	for _, r := range rates {
		if r.IsActive {
			activeCount++
		}
		if r.ID == first.ID {
			assert.False(t, r.IsActive)
		}
	}
	assert.Equal(t, 1, activeCount)

	// reactivating the first one flips the pair back
	_, err = svc.Update(ctx, first.ID, RateRequest{VehicleType: "CAR", RateType: "HOUR", Price: 3000, IsActive: boolPtr(true)})
	require.NoError(t, err)
	active, err = svc.ActiveRate(ctx, domain.VehicleCar, TypeHour)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
}

func TestInactiveRatesDoNotCollide(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, RateRequest{VehicleType: "VAN", RateType: "DAY", Price: 100, IsActive: boolPtr(false)})
		require.NoError(t, err)
	}
	active, err := svc.ActiveRate(ctx, domain.VehicleVan, TypeDay)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  RateRequest
		want error
	}{
		{"unknown vehicle", RateRequest{VehicleType: "boat", RateType: "HOUR", Price: 1}, ErrInvalidVehicleType},
		{"unknown rate type", RateRequest{VehicleType: "CAR", RateType: "WEEK", Price: 1}, ErrInvalidRateType},
		{"helmet on car", RateRequest{VehicleType: "CAR", RateType: "HELMET", Price: 1}, ErrHelmetVehicle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := svc.Create(ctx, RateRequest{VehicleType: "CAR", RateType: "HOUR", Price: -5})
	assert.Error(t, err)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 404, RateRequest{VehicleType: "CAR", RateType: "HOUR"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 404), ErrNotFound)
}

func TestTypeUnits(t *testing.T) {
	for _, typ := range []Type{TypeMinute, TypeHour, TypeDay, TypeMonth} {
		assert.True(t, typ.IsTimeBased(), string(typ))
	}
	assert.False(t, TypeHelmet.IsTimeBased())

	parsed, ok := ParseType("hora")
	assert.True(t, ok)
	assert.Equal(t, TypeHour, parsed)
}
