package rate

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parkwash/internal/database"
	"parkwash/internal/domain"
)

type Repository interface {
	Save(ctx context.Context, r *Rate) error
	GetByID(ctx context.Context, id int64) (*Rate, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, vehicleType domain.VehicleType) ([]Rate, error)
	FindActive(ctx context.Context, vehicleType domain.VehicleType, rateType Type) (*Rate, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Save creates or updates r. When r is active, whichever rate was active for
// the same pair is switched off in the same transaction.
func (r *repository) Save(ctx context.Context, rt *Rate) error {
	rt.syncActiveKey()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if rt.ActiveKey != nil {
			if err := tx.Model(&Rate{}).
				Where("active_key = ? AND id <> ?", *rt.ActiveKey, rt.ID).
				Updates(map[string]any{"is_active": false, "active_key": gorm.Expr("NULL")}).Error; err != nil {
				return err
			}
		}
		if rt.ID == 0 {
			return tx.Create(rt).Error
		}
		return tx.Save(rt).Error
	})
	if database.IsUniqueViolation(err) {
		return ErrActiveConflict
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Rate, error) {
	var rt Rate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Rate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, vehicleType domain.VehicleType) ([]Rate, error) {
	q := r.db.WithContext(ctx).Order("vehicle_type ASC, rate_type ASC, id ASC")
	if vehicleType != "" {
		q = q.Where("vehicle_type = ?", vehicleType)
	}
	var out []Rate
	err := q.Find(&out).Error
	return out, err
}

func (r *repository) FindActive(ctx context.Context, vehicleType domain.VehicleType, rateType Type) (*Rate, error) {
	var rt Rate
	err := r.db.WithContext(ctx).
		Where("active_key = ?", pairKey(vehicleType, rateType)).
		First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}
