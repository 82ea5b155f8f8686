package parking

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"parkwash/internal/database"
	"parkwash/internal/domain"
	"parkwash/internal/domain/billing"
	"parkwash/internal/domain/rate"
	"parkwash/internal/domain/shift"
	"parkwash/internal/pkg/validator"
)

// ShiftGate is the part of the shift ledger a paid operation needs. Both
// calls take the caller's transaction.
type ShiftGate interface {
	RequireActiveShift(ctx context.Context, tx *gorm.DB, operatorID int64) (*shift.Shift, error)
	RecordRevenue(ctx context.Context, tx *gorm.DB, line *shift.RevenueLine) error
}

type Quoter interface {
	Quote(ctx context.Context, in billing.Input) (*billing.Charge, error)
}

// Service manages vehicle sessions from entry to exit.
type Service struct {
	db     *gorm.DB
	repo   Repository
	shifts ShiftGate
	quoter Quoter
	now    domain.Clock
}

func NewService(db *gorm.DB, repo Repository, shifts ShiftGate, quoter Quoter) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		shifts: shifts,
		quoter: quoter,
		now:    domain.SystemClock,
	}
}

// SetClock replaces the time source; used by tests.
func (s *Service) SetClock(clock domain.Clock) { s.now = clock }

// RegisterEntry opens a session on the operator's active shift. The shift
// gate is checked before anything else.
func (s *Service) RegisterEntry(ctx context.Context, operatorID int64, req EntryRequest) (*SessionView, error) {
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
	if req.HelmetCount < 0 {
		return nil, ErrInvalidHelmetCount
	}

	var sess Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sh, err := s.shifts.RequireActiveShift(ctx, tx, operatorID)
		if err != nil {
			return err
		}

		repo := s.repo.WithTx(tx)
		open, err := repo.GetOpenByPlate(ctx, plate)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrAlreadyParked.WithDetails(map[string]any{"plate": plate, "session_id": open.ID})
		}

		p := plate
		sess = Session{
			Plate:         plate,
			VehicleType:   vt,
			OwnerName:     strings.TrimSpace(req.OwnerName),
			OwnerPhone:    strings.TrimSpace(req.OwnerPhone),
			HelmetCount:   req.HelmetCount,
			EntryTime:     s.now(),
			PaymentStatus: PaymentPending,
			Notes:         strings.TrimSpace(req.Notes),
			ShiftID:       sh.ID,
			OpenPlate:     &p,
		}
		if err := repo.Create(ctx, &sess); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrAlreadyParked.WithDetails(map[string]any{"plate": plate})
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("parking_entry session_id=%d plate=%s shift_id=%d operator_id=%d", sess.ID, sess.Plate, sess.ShiftID, operatorID)
	view := toView(&sess, s.now())
	return &view, nil
}

// RegisterExit prices and closes the plate's open session. The operator's
// shift is checked before anything is priced. The charge is quoted outside
// the write transaction, so pricing is the snapshot taken at quote time; the
// close and its revenue line then commit together on the exiting operator's
// shift, which is locked and checked again.
func (s *Service) RegisterExit(ctx context.Context, operatorID int64, req ExitRequest) (*ExitResponse, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	plate := domain.NormalizePlate(req.Plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}
	var rt rate.Type
	if strings.TrimSpace(req.RateType) != "" {
		parsed, ok := rate.ParseType(req.RateType)
		if !ok || !parsed.IsTimeBased() {
			return nil, ErrInvalidRateType
		}
		rt = parsed
	}

	if _, err := s.shifts.RequireActiveShift(ctx, s.db, operatorID); err != nil {
		return nil, err
	}

	open, err := s.repo.GetOpenByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrSessionNotFound.WithDetails(map[string]string{"plate": plate})
	}

	exit := s.now()
	if !exit.After(open.EntryTime) {
		exit = open.EntryTime.Add(time.Microsecond)
	}

	charge, err := s.quoter.Quote(ctx, billing.Input{
		Plate:       open.Plate,
		VehicleType: open.VehicleType,
		EntryTime:   open.EntryTime,
		ExitTime:    exit,
		HelmetCount: open.HelmetCount,
		RateType:    rt,
	})
	if err != nil {
		return nil, err
	}

	var exitShiftID int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sh, err := s.shifts.RequireActiveShift(ctx, tx, operatorID)
		if err != nil {
			return err
		}
		exitShiftID = sh.ID

		closed, err := s.repo.WithTx(tx).Close(ctx, open.ID, ClosePatch{
			ExitTime:    exit,
			TotalCost:   charge.Total,
			RateType:    string(charge.RateType),
			ExitShiftID: sh.ID,
		})
		if err != nil {
			return err
		}
		if !closed {
			return ErrAlreadyExited
		}

		return s.shifts.RecordRevenue(ctx, tx, &shift.RevenueLine{
			ShiftID:          open.ShiftID,
			CollectedShiftID: sh.ID,
			Source:           shift.SourceParking,
			ReferenceID:      open.ID,
			Plate:            open.Plate,
			Amount:           charge.Total,
			CreatedAt:        exit,
		})
	})
	if err != nil {
		return nil, err
	}

	total := charge.Total
	open.ExitTime = &exit
	open.TotalCost = &total
	open.PaymentStatus = PaymentPaid
	open.RateType = string(charge.RateType)
	open.ExitShiftID = &exitShiftID
	open.OpenPlate = nil

	log.Printf("parking_exit session_id=%d plate=%s amount=%d rate_type=%s operator_id=%d", open.ID, open.Plate, total, charge.RateType, operatorID)
	return &ExitResponse{
		Session:   toView(open, exit),
		AmountDue: total,
		Breakdown: charge,
	}, nil
}

func (s *Service) ListSessions(ctx context.Context, filter string, limit int) ([]SessionView, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(filter)))
	switch f {
	case "":
		f = FilterAll
	case FilterAll, FilterActive, FilterCompleted:
	default:
		return nil, ErrInvalidFilter
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	sessions, err := s.repo.List(ctx, f, limit)
	if err != nil {
		return nil, err
	}
	return s.views(sessions), nil
}

// ActiveSessions lists vehicles currently inside, longest stay first.
func (s *Service) ActiveSessions(ctx context.Context) ([]SessionView, error) {
	sessions, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(sessions), nil
}

func (s *Service) OpenSessionByPlate(ctx context.Context, plate string) (*SessionView, error) {
	open, err := s.FindOpen(ctx, plate)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrSessionNotFound
	}
	view := toView(open, s.now())
	return &view, nil
}

// FindOpen returns the plate's open session, or nil.
func (s *Service) FindOpen(ctx context.Context, plate string) (*Session, error) {
	return s.repo.GetOpenByPlate(ctx, domain.NormalizePlate(plate))
}

func (s *Service) views(sessions []Session) []SessionView {
	now := s.now()
	out := make([]SessionView, 0, len(sessions))
	for i := range sessions {
		out = append(out, toView(&sessions[i], now))
	}
	return out
}
