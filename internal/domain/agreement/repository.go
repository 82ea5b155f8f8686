package agreement

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Agreement) error
	GetByID(ctx context.Context, id int64) (*Agreement, error)
	List(ctx context.Context, skip, limit int) ([]Agreement, error)
	SetActive(ctx context.Context, id int64, active bool) error
	AddVehicle(ctx context.Context, v *EnrolledVehicle) error
	RemoveVehicle(ctx context.Context, agreementID int64, plate string) error
	FindActiveByPlate(ctx context.Context, plate string) (*Agreement, error)
	CountActive(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Agreement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Agreement, error) {
	var a Agreement
	err := r.db.WithContext(ctx).
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB { return db.Order("plate ASC") }).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, skip, limit int) ([]Agreement, error) {
	var out []Agreement
	err := r.db.WithContext(ctx).
		Preload("Vehicles", func(db *gorm.DB) *gorm.DB { return db.Order("plate ASC") }).
		Order("name ASC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).Model(&Agreement{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) AddVehicle(ctx context.Context, v *EnrolledVehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) RemoveVehicle(ctx context.Context, agreementID int64, plate string) error {
	res := r.db.WithContext(ctx).
		Where("agreement_id = ? AND plate = ?", agreementID, plate).
		Delete(&EnrolledVehicle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVehicleNotEnrolled
	}
	return nil
}

func (r *repository) FindActiveByPlate(ctx context.Context, plate string) (*Agreement, error) {
	var a Agreement
	err := r.db.WithContext(ctx).
		Joins("JOIN agreement_vehicles av ON av.agreement_id = agreements.id").
		Where("av.plate = ? AND agreements.is_active = ?", plate, true).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Agreement{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}
