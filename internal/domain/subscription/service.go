package subscription

import (
	"context"
	"strings"
	"time"

	"parkwash/internal/domain"
	"parkwash/internal/pkg/validator"
)

const defaultDurationDays = 30

// Service tracks plate subscriptions. Status is computed with the service
// clock in the configured location on every read.
type Service struct {
	repo         Repository
	now          domain.Clock
	loc          *time.Location
	expiringDays int
}

func NewService(repo Repository, loc *time.Location, expiringDays int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:         repo,
		now:          domain.SystemClock,
		loc:          loc,
		expiringDays: expiringDays,
	}
}

// SetClock replaces the time source; used by tests.
func (s *Service) SetClock(clock domain.Clock) { s.now = clock }

func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.loc)
}

func (s *Service) Create(ctx context.Context, req CreateSubscriptionRequest) (*SubscriptionResponse, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	plate := domain.NormalizePlate(req.Plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}
	vt, ok := domain.ParseVehicleType(req.VehicleType)
	if !ok {
		return nil, ErrInvalidVehicleType
	}

	start := s.today()
	if strings.TrimSpace(req.StartDate) != "" {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(req.StartDate))
		if err != nil {
			return nil, ErrInvalidStartDate
		}
		start = parsed
	}
	duration := req.DurationDays
	if duration == 0 {
		duration = defaultDurationDays
	}
	end := start.AddDate(0, 0, duration-1)

	overlap, err := s.repo.HasOverlap(ctx, plate, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrOverlap.WithDetails(map[string]string{"plate": plate})
	}

	sub := &Subscription{
		Plate:        plate,
		VehicleType:  vt,
		OwnerName:    strings.TrimSpace(req.OwnerName),
		OwnerPhone:   strings.TrimSpace(req.OwnerPhone),
		StartDate:    start,
		EndDate:      end,
		MonthlyPrice: req.MonthlyFee,
		IsActive:     true,
		Notes:        strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	resp := toResponse(sub, s.today(), s.expiringDays)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]SubscriptionResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	subs, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	today := s.today()
	out := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toResponse(&subs[i], today, s.expiringDays))
	}
	return out, nil
}

// CheckPlate returns the plate's latest-ending subscription with its
// derived status, expired ones included.
func (s *Service) CheckPlate(ctx context.Context, plate string) (*SubscriptionResponse, error) {
	subs, err := s.repo.ListActiveByPlate(ctx, domain.NormalizePlate(plate))
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, ErrSubscriptionNotFound
	}
	resp := toResponse(&subs[0], s.today(), s.expiringDays)
	return &resp, nil
}

func (s *Service) Cancel(ctx context.Context, id int64) (*SubscriptionResponse, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriptionNotFound
	}
	now := s.now()
	if err := s.repo.Cancel(ctx, id, now); err != nil {
		return nil, err
	}
	sub.IsActive = false
	sub.CancelledAt = &now
	resp := toResponse(sub, s.today(), s.expiringDays)
	return &resp, nil
}

// ActiveForPlate returns a subscription that covers every calendar day of
// the stay [from, to], or nil.
func (s *Service) ActiveForPlate(ctx context.Context, plate string, from, to time.Time) (*Subscription, error) {
	subs, err := s.repo.ListActiveByPlate(ctx, domain.NormalizePlate(plate))
	if err != nil {
		return nil, err
	}
	fromDay := domain.DateOf(from, s.loc)
	toDay := domain.DateOf(to, s.loc)
	for i := range subs {
		if subs[i].Covers(fromDay, toDay) {
			return &subs[i], nil
		}
	}
	return nil, nil
}
