package washing

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Transition moves a job from one status to another only if it is still
	// in the expected status; it reports whether the row changed.
	Transition(ctx context.Context, id int64, from, to Status, fields map[string]any) (bool, error)
	ListActive(ctx context.Context) ([]Job, error)
	List(ctx context.Context, status Status, limit int) ([]Job, error)
	ListForWasher(ctx context.Context, washerID int64, since time.Time) ([]Job, error)
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

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *repository) Transition(ctx context.Context, id int64, from, to Status, fields map[string]any) (bool, error) {
	updates := map[string]any{"status": to}
	for k, v := range fields {
		updates[k] = v
	}
	res := r.db.WithContext(ctx).
		Model(&Job{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Job, error) {
	var out []Job
	err := r.db.WithContext(ctx).
		Where("status IN ?", []Status{StatusPending, StatusInProgress}).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) List(ctx context.Context, status Status, limit int) ([]Job, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []Job
	err := q.Find(&out).Error
	return out, err
}

// ListForWasher returns the washer's open jobs plus those finished since the
// given time.
func (r *repository) ListForWasher(ctx context.Context, washerID int64, since time.Time) ([]Job, error) {
	var out []Job
	err := r.db.WithContext(ctx).
		Where("washer_id = ?", washerID).
		Where("status = ? OR end_time >= ?", StatusInProgress, since).
		Order("start_time DESC, id DESC").
		Find(&out).Error
	return out, err
}
