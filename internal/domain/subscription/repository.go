package subscription

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles persistence for plate subscriptions
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id int64) (*Subscription, error)
	List(ctx context.Context, skip, limit int) ([]Subscription, error)
	ListActiveByPlate(ctx context.Context, plate string) ([]Subscription, error)
	HasOverlap(ctx context.Context, plate string, start, end time.Time) (bool, error)
	Cancel(ctx context.Context, id int64, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Subscription, error) {
	var sub Subscription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *repository) List(ctx context.Context, skip, limit int) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Order("end_date DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListActiveByPlate returns the plate's non-cancelled subscriptions, latest
// ending first.
func (r *repository) ListActiveByPlate(ctx context.Context, plate string) ([]Subscription, error) {
	var out []Subscription
	err := r.db.WithContext(ctx).
		Where("plate = ? AND is_active = ?", plate, true).
		Order("end_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) HasOverlap(ctx context.Context, plate string, start, end time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("plate = ? AND is_active = ? AND start_date <= ? AND end_date >= ?", plate, true, end, start).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) Cancel(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":    false,
			"cancelled_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyCancelled
	}
	return nil
}
