package agreement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkwash/internal/testutil"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db := testutil.NewDB(t, &Agreement{}, &EnrolledVehicle{})
	return NewService(NewRepository(db))
}

func TestEnrollAndLookupByPlate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAgreementRequest{Name: "Acme Logistics", ParkingDiscount: 50, WashingDiscount: 10})
	require.NoError(t, err)

	a, err = svc.EnrollVehicle(ctx, a.ID, EnrollVehicleRequest{Plate: "abc-123", VehicleType: "car"})
	require.NoError(t, err)
	require.Len(t, a.Vehicles, 1)
	assert.Equal(t, "ABC123", a.Vehicles[0].Plate)

	found, err := svc.ActiveForPlate(ctx, "ABC 123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, a.ID, found.ID)
	assert.Equal(t, 50, found.ParkingDiscountPct)

	none, err := svc.ActiveForPlate(ctx, "ZZZ999")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestInactiveAgreementGivesNoDiscount(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAgreementRequest{Name: "Old Corp", ParkingDiscount: 20})
	require.NoError(t, err)
	_, err = svc.EnrollVehicle(ctx, a.ID, EnrollVehicleRequest{Plate: "OLD001"})
	require.NoError(t, err)

	updated, err := svc.SetActive(ctx, a.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	found, err := svc.ActiveForPlate(ctx, "OLD001")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPlateEnrolledOnce(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAgreementRequest{Name: "A"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CreateAgreementRequest{Name: "B"})
	require.NoError(t, err)

	_, err = svc.EnrollVehicle(ctx, a.ID, EnrollVehicleRequest{Plate: "DUP001"})
	require.NoError(t, err)

	_, err = svc.EnrollVehicle(ctx, b.ID, EnrollVehicleRequest{Plate: "dup-001"})
	assert.True(t, errors.Is(err, ErrPlateEnrolled), "got %v", err)
}

func TestRemoveVehicle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAgreementRequest{Name: "A"})
	require.NoError(t, err)
	_, err = svc.EnrollVehicle(ctx, a.ID, EnrollVehicleRequest{Plate: "RM0001"})
	require.NoError(t, err)

	a, err = svc.RemoveVehicle(ctx, a.ID, "rm0001")
	require.NoError(t, err)
	assert.Empty(t, a.Vehicles)

	_, err = svc.RemoveVehicle(ctx, a.ID, "RM0001")
	assert.ErrorIs(t, err, ErrVehicleNotEnrolled)
}

func TestCreateValidatesDiscounts(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), CreateAgreementRequest{Name: "Too generous", ParkingDiscount: 150})
	assert.Error(t, err)

	_, err = svc.EnrollVehicle(context.Background(), 999, EnrollVehicleRequest{Plate: "X1"})
	assert.ErrorIs(t, err, ErrNotFound)
}
