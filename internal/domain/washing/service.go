package washing

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"

	"parkwash/internal/domain"
	"parkwash/internal/domain/agreement"
	"parkwash/internal/domain/board"
	"parkwash/internal/domain/employee"
	"parkwash/internal/domain/parking"
	"parkwash/internal/domain/shift"
	"parkwash/internal/pkg/validator"
)

type ShiftGate interface {
	RequireActiveShift(ctx context.Context, tx *gorm.DB, operatorID int64) (*shift.Shift, error)
	RecordRevenue(ctx context.Context, tx *gorm.DB, line *shift.RevenueLine) error
}

type WasherValidator interface {
	ValidateWasher(ctx context.Context, washerID int64) (*employee.Employee, error)
}

type Pricer interface {
	WashingPrice(ctx context.Context, plate string, price int64) (int64, *agreement.Agreement, error)
}

type SessionLookup interface {
	FindOpen(ctx context.Context, plate string) (*parking.Session, error)
}

type Publisher interface {
	Publish(e board.Event)
}

// Service runs the washing job lifecycle pending -> in_progress ->
// completed. Every transition is a compare-and-swap on the status column.
type Service struct {
	db       *gorm.DB
	repo     Repository
	shifts   ShiftGate
	washers  WasherValidator
	pricer   Pricer
	sessions SessionLookup
	events   Publisher
	now      domain.Clock
}

func NewService(db *gorm.DB, repo Repository, shifts ShiftGate, washers WasherValidator, pricer Pricer, sessions SessionLookup, events Publisher) *Service {
	return &Service{
		db:       db,
		repo:     repo,
		shifts:   shifts,
		washers:  washers,
		pricer:   pricer,
		sessions: sessions,
		events:   events,
		now:      domain.SystemClock,
	}
}

// SetClock replaces the time source; used by tests.
func (s *Service) SetClock(clock domain.Clock) { s.now = clock }

// CreateJob books a wash at the quoted price and records the charged amount
// as revenue on the operator's active shift.
func (s *Service) CreateJob(ctx context.Context, operatorID int64, req CreateJobRequest) (*Job, error) {
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	plate := domain.NormalizePlate(req.Plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}
	vt := domain.VehicleOther
	if strings.TrimSpace(req.VehicleType) != "" {
		parsed, ok := domain.ParseVehicleType(req.VehicleType)
		if !ok {
			return nil, ErrInvalidVehicleType
		}
		vt = parsed
	}
	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		serviceType = DefaultServiceType
	}

	charged, ag, err := s.pricer.WashingPrice(ctx, plate, req.Price)
	if err != nil {
		return nil, err
	}

	sessionID := req.SessionID
	if sessionID == nil && s.sessions != nil {
		open, err := s.sessions.FindOpen(ctx, plate)
		if err != nil {
			return nil, err
		}
		if open != nil {
			id := open.ID
			sessionID = &id
		}
	}

	job := Job{
		Plate:         plate,
		VehicleType:   vt,
		OwnerName:     strings.TrimSpace(req.OwnerName),
		OwnerPhone:    strings.TrimSpace(req.OwnerPhone),
		ServiceType:   serviceType,
		Price:         req.Price,
		AmountCharged: charged,
		Status:        StatusPending,
		Notes:         strings.TrimSpace(req.Notes),
		SessionID:     sessionID,
		CreatedBy:     operatorID,
	}
	if ag != nil && charged != req.Price {
		id := ag.ID
		job.AgreementID = &id
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sh, err := s.shifts.RequireActiveShift(ctx, tx, operatorID)
		if err != nil {
			return err
		}

		job.ShiftID = sh.ID
		job.CreatedAt = s.now()
		if err := s.repo.WithTx(tx).Create(ctx, &job); err != nil {
			return err
		}

		return s.shifts.RecordRevenue(ctx, tx, &shift.RevenueLine{
			ShiftID:          sh.ID,
			CollectedShiftID: sh.ID,
			Source:           shift.SourceWashing,
			ReferenceID:      job.ID,
			Plate:            job.Plate,
			Amount:           job.AmountCharged,
			CreatedAt:        job.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("washing_job_created job_id=%d plate=%s price=%d charged=%d shift_id=%d", job.ID, job.Plate, job.Price, job.AmountCharged, job.ShiftID)
	s.publish(board.EventJobCreated, &job)
	return &job, nil
}

// AssignWasher starts a pending job.
func (s *Service) AssignWasher(ctx context.Context, jobID, washerID int64) (*Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != StatusPending {
		return nil, transitionError(job.Status, StatusInProgress)
	}
	if _, err := s.washers.ValidateWasher(ctx, washerID); err != nil {
		return nil, err
	}

	start := s.now()
	ok, err := s.repo.Transition(ctx, jobID, StatusPending, StatusInProgress, map[string]any{
		"washer_id":  washerID,
		"start_time": start,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.lostRace(ctx, jobID, StatusInProgress)
	}

	job.Status = StatusInProgress
	job.WasherID = &washerID
	job.StartTime = &start

	log.Printf("washing_job_assigned job_id=%d washer_id=%d", job.ID, washerID)
	s.publish(board.EventJobAssigned, job)
	return job, nil
}

// CompleteJob finishes an in-progress job. A washer may only complete jobs
// assigned to them; operators may complete any.
func (s *Service) CompleteJob(ctx context.Context, jobID, actorID int64, actorIsWasher bool) (*Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != StatusInProgress {
		return nil, transitionError(job.Status, StatusCompleted)
	}
	if actorIsWasher && (job.WasherID == nil || *job.WasherID != actorID) {
		return nil, ErrNotAssignedWasher
	}

	end := s.now()
	ok, err := s.repo.Transition(ctx, jobID, StatusInProgress, StatusCompleted, map[string]any{
		"end_time": end,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.lostRace(ctx, jobID, StatusCompleted)
	}

	job.Status = StatusCompleted
	job.EndTime = &end

	log.Printf("washing_job_completed job_id=%d washer_id=%d", job.ID, derefID(job.WasherID))
	s.publish(board.EventJobCompleted, job)
	return job, nil
}

func (s *Service) GetJob(ctx context.Context, id int64) (*Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// ListActive is the dispatch board: pending and in-progress jobs, oldest
// first.
func (s *Service) ListActive(ctx context.Context) ([]Job, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListJobs(ctx context.Context, status string, limit int) ([]Job, error) {
	st := Status(strings.ToLower(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, ErrInvalidStatus
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, st, limit)
}

// ListForWasher is a washer's own board: jobs in progress plus those
// completed today.
func (s *Service) ListForWasher(ctx context.Context, washerID int64) ([]Job, error) {
	since := domain.DateOf(s.now(), nil)
	return s.repo.ListForWasher(ctx, washerID, since)
}

// lostRace re-reads a job whose compare-and-swap matched no row and reports
// the status it was actually in.
func (s *Service) lostRace(ctx context.Context, jobID int64, to Status) error {
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrJobNotFound
	}
	return transitionError(current.Status, to)
}

func (s *Service) publish(kind string, job *Job) {
	if s.events == nil {
		return
	}
	s.events.Publish(board.Event{
		Type:     kind,
		JobID:    job.ID,
		Status:   string(job.Status),
		Plate:    job.Plate,
		WasherID: job.WasherID,
		Payload:  job,
		At:       s.now(),
	})
}

func transitionError(from, to Status) error {
	return ErrInvalidTransition.WithDetails(map[string]string{
		"from": string(from),
		"to":   string(to),
	})
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
