package parking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ClosePatch is what an exit writes onto the open session.
type ClosePatch struct {
	ExitTime    time.Time
	TotalCost   int64
	RateType    string
	ExitShiftID int64
}

type Repository interface {
	// WithTx binds the repository to a running transaction.
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id int64) (*Session, error)
	GetOpenByPlate(ctx context.Context, plate string) (*Session, error)
	Close(ctx context.Context, id int64, patch ClosePatch) (bool, error)
	List(ctx context.Context, filter Filter, limit int) ([]Session, error)
	ListOpen(ctx context.Context) ([]Session, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Session, error) {
	var s Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetOpenByPlate(ctx context.Context, plate string) (*Session, error) {
	var s Session
	err := r.db.WithContext(ctx).Where("open_plate = ?", plate).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Close sets the exit fields only if the session is still open. It reports
// false when another request closed it first.
func (r *repository) Close(ctx context.Context, id int64, patch ClosePatch) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ? AND exit_time IS NULL", id).
		Updates(map[string]any{
			"exit_time":      patch.ExitTime,
			"total_cost":     patch.TotalCost,
			"payment_status": PaymentPaid,
			"rate_type":      patch.RateType,
			"exit_shift_id":  patch.ExitShiftID,
			"open_plate":     gorm.Expr("NULL"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) List(ctx context.Context, filter Filter, limit int) ([]Session, error) {
	q := r.db.WithContext(ctx).Order("entry_time DESC, id DESC").Limit(limit)
	switch filter {
	case FilterActive:
		q = q.Where("exit_time IS NULL")
	case FilterCompleted:
		q = q.Where("exit_time IS NOT NULL")
	}
	var out []Session
	err := q.Find(&out).Error
	return out, err
}

func (r *repository) ListOpen(ctx context.Context) ([]Session, error) {
	var out []Session
	err := r.db.WithContext(ctx).
		Where("exit_time IS NULL").
		Order("entry_time ASC, id ASC").
		Find(&out).Error
	return out, err
}
