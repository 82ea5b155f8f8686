package employee

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByUsername(ctx context.Context, username string) (*Employee, error)
	List(ctx context.Context, role Role) ([]Employee, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, role Role) ([]Employee, error) {
	q := r.db.WithContext(ctx).Order("full_name ASC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var out []Employee
	err := q.Find(&out).Error
	return out, err
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
