package rate

import (
	"context"
	"strings"

	"parkwash/internal/domain"
	"parkwash/internal/pkg/validator"
)

// Service is the rate catalog: price rules keyed by vehicle type and rate
// type.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req RateRequest) (*Rate, error) {
	rt := &Rate{IsActive: true}
	if err := applyRequest(rt, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) Update(ctx context.Context, id int64, req RateRequest) (*Rate, error) {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, ErrNotFound
	}
	if err := applyRequest(rt, req); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, vehicleType string) ([]Rate, error) {
	var vt domain.VehicleType
	if strings.TrimSpace(vehicleType) != "" {
		parsed, ok := domain.ParseVehicleType(vehicleType)
		if !ok {
			return nil, ErrInvalidVehicleType
		}
		vt = parsed
	}
	return s.repo.List(ctx, vt)
}

// ActiveRate returns the active rate for the pair, or nil when none is
// configured. Callers decide whether a missing rate is fatal.
func (s *Service) ActiveRate(ctx context.Context, vehicleType domain.VehicleType, rateType Type) (*Rate, error) {
	return s.repo.FindActive(ctx, vehicleType, rateType)
}

func applyRequest(rt *Rate, req RateRequest) error {
	if err := validator.Check(req); err != nil {
		return err
	}
	vt, ok := domain.ParseVehicleType(req.VehicleType)
	if !ok {
		return ErrInvalidVehicleType
	}
	typ, ok := ParseType(req.RateType)
	if !ok {
		return ErrInvalidRateType
	}
	if typ == TypeHelmet && !vt.IsMotorcycle() {
		return ErrHelmetVehicle
	}

	rt.VehicleType = vt
	rt.RateType = typ
	rt.Price = req.Price
	rt.Description = strings.TrimSpace(req.Description)
	if req.IsActive != nil {
		rt.IsActive = *req.IsActive
	}
	return nil
}
