package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkwash/internal/testutil"
)

var today = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *testutil.Clock) {
	t.Helper()
	db := testutil.NewDB(t, &Subscription{})
	clock := testutil.NewClock(today)
	svc := NewService(NewRepository(db), time.UTC, DefaultExpiringWindowDays)
	svc.SetClock(clock.Now)
	return svc, clock
}

func TestStatusDerivedFromEndDate(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name   string
		offset int
		want   Status
	}{
		{"ends in 30 days", 30, StatusActive},
		{"ends in 5 days", 5, StatusExpiring},
		{"ends today", 0, StatusExpiring},
		{"ended yesterday", -1, StatusExpired},
		{"ends in 8 days", 8, StatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Subscription{EndDate: day.AddDate(0, 0, tc.offset), IsActive: true}
			assert.Equal(t, tc.want, s.StatusOn(day, DefaultExpiringWindowDays))
			assert.Equal(t, tc.offset, s.DaysRemaining(day))
		})
	}
}

func TestCreateDefaultsAndCheck(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	sub, err := svc.Create(ctx, CreateSubscriptionRequest{
		Plate:       "xyz-789",
		VehicleType: "car",
		OwnerName:   "Dana",
		MonthlyFee:  120000,
	})
	require.NoError(t, err)
	assert.Equal(t, "XYZ789", sub.Plate)
	assert.Equal(t, "2024-03-10", sub.StartDate)
	assert.Equal(t, "2024-04-08", sub.EndDate)
	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, 29, sub.DaysRemaining)

	checked, err := svc.CheckPlate(ctx, "XYZ 789")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, checked.ID)

	_, err = svc.CheckPlate(ctx, "NOPE00")
	assert.True(t, errors.Is(err, ErrSubscriptionNotFound))
}

func TestStatusMovesWithClock(t *testing.T) {
	svc, clock := setupService(t)
	ctx := context.Background()

	sub, err := svc.Create(ctx, CreateSubscriptionRequest{Plate: "CLK001", VehicleType: "car", DurationDays: 10})
	require.NoError(t, err)
	assert.Equal(t, StatusActive, sub.Status)

	clock.Advance(4 * 24 * time.Hour)
	got, err := svc.CheckPlate(ctx, "CLK001")
	require.NoError(t, err)
	assert.Equal(t, StatusExpiring, got.Status)

	clock.Advance(6 * 24 * time.Hour)
	got, err = svc.CheckPlate(ctx, "CLK001")
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, got.Status)
	assert.Equal(t, -1, got.DaysRemaining)
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSubscriptionRequest{Plate: "OVR001", VehicleType: "car", StartDate: "2024-03-01"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateSubscriptionRequest{Plate: "OVR001", VehicleType: "car", StartDate: "2024-03-20"})
	assert.True(t, errors.Is(err, ErrOverlap), "got %v", err)

	_, err = svc.Create(ctx, CreateSubscriptionRequest{Plate: "OVR001", VehicleType: "car", StartDate: "2024-03-31"})
	assert.NoError(t, err)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSubscriptionRequest{Plate: "BAD001", VehicleType: "spaceship"})
	assert.True(t, errors.Is(err, ErrInvalidVehicleType))

	_, err = svc.Create(ctx, CreateSubscriptionRequest{Plate: "BAD001", VehicleType: "car", StartDate: "10/03/2024"})
	assert.True(t, errors.Is(err, ErrInvalidStartDate))
}

func TestCancelStopsCoverage(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	sub, err := svc.Create(ctx, CreateSubscriptionRequest{Plate: "CAN001", VehicleType: "car"})
	require.NoError(t, err)

	entry := today.Add(-2 * time.Hour)
	covering, err := svc.ActiveForPlate(ctx, "CAN001", entry, today)
	require.NoError(t, err)
	require.NotNil(t, covering)

	cancelled, err := svc.Cancel(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, cancelled.IsActive)

	covering, err = svc.ActiveForPlate(ctx, "CAN001", entry, today)
	require.NoError(t, err)
	assert.Nil(t, covering)

	_, err = svc.Cancel(ctx, sub.ID)
	assert.True(t, errors.Is(err, ErrAlreadyCancelled))
}

func TestCoverageRequiresWholeStay(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSubscriptionRequest{Plate: "EDGE01", VehicleType: "car", StartDate: "2024-03-10", DurationDays: 1})
	require.NoError(t, err)

	entry := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	sameDay, err := svc.ActiveForPlate(ctx, "EDGE01", entry, entry.Add(4*time.Hour))
	require.NoError(t, err)
	assert.NotNil(t, sameDay)

	overnight, err := svc.ActiveForPlate(ctx, "EDGE01", entry, entry.Add(20*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, overnight)
}
