package agreement

import (
	"context"
	"strings"

	"parkwash/internal/database"
	"parkwash/internal/domain"
	"parkwash/internal/pkg/validator"
)

const maxListLimit = 500

// Service is the agreement registry.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateAgreementRequest) (*Agreement, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	a := &Agreement{
		Name:               strings.TrimSpace(req.Name),
		ContactName:        strings.TrimSpace(req.ContactName),
		ContactPhone:       strings.TrimSpace(req.ContactPhone),
		ContactEmail:       strings.TrimSpace(req.ContactEmail),
		ParkingDiscountPct: req.ParkingDiscount,
		WashingDiscountPct: req.WashingDiscount,
		IsActive:           true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	a.Vehicles = []EnrolledVehicle{}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Agreement, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]Agreement, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = 100
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*Agreement, error) {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) EnrollVehicle(ctx context.Context, agreementID int64, req EnrollVehicleRequest) (*Agreement, error) {
	plate := domain.NormalizePlate(req.Plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}

	var vt domain.VehicleType
	if strings.TrimSpace(req.VehicleType) != "" {
		parsed, ok := domain.ParseVehicleType(req.VehicleType)
		if !ok {
			return nil, ErrInvalidVehicleType
		}
		vt = parsed
	}

	if _, err := s.Get(ctx, agreementID); err != nil {
		return nil, err
	}

	v := &EnrolledVehicle{
		AgreementID: agreementID,
		Plate:       plate,
		VehicleType: vt,
		OwnerName:   strings.TrimSpace(req.OwnerName),
	}
	if err := s.repo.AddVehicle(ctx, v); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrPlateEnrolled.WithDetails(map[string]string{"plate": plate})
		}
		return nil, err
	}
	return s.Get(ctx, agreementID)
}

func (s *Service) RemoveVehicle(ctx context.Context, agreementID int64, plate string) (*Agreement, error) {
	if err := s.repo.RemoveVehicle(ctx, agreementID, domain.NormalizePlate(plate)); err != nil {
		return nil, err
	}
	return s.Get(ctx, agreementID)
}

// ActiveForPlate returns the active agreement the plate is enrolled in, or
// nil.
func (s *Service) ActiveForPlate(ctx context.Context, plate string) (*Agreement, error) {
	return s.repo.FindActiveByPlate(ctx, domain.NormalizePlate(plate))
}

func (s *Service) CountActive(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}
