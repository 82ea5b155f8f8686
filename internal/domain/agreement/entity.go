package agreement

import (
	"time"

	"parkwash/internal/domain"
)

// Agreement is a corporate discount contract. Discounts apply only to
// enrolled plates and only while the agreement is active.
type Agreement struct {
	ID                 int64             `gorm:"primaryKey" json:"id"`
	Name               string            `gorm:"column:name;not null" json:"name"`
	ContactName        string            `gorm:"column:contact_name" json:"contact_name"`
	ContactPhone       string            `gorm:"column:contact_phone" json:"contact_phone"`
	ContactEmail       string            `gorm:"column:contact_email" json:"contact_email"`
	ParkingDiscountPct int               `gorm:"column:parking_discount_pct;not null;default:0" json:"parking_discount"`
	WashingDiscountPct int               `gorm:"column:washing_discount_pct;not null;default:0" json:"washing_discount"`
	IsActive           bool              `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Vehicles           []EnrolledVehicle `gorm:"foreignKey:AgreementID;constraint:OnDelete:CASCADE" json:"vehicles"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Agreement) TableName() string { return "agreements" }

// EnrolledVehicle puts a plate under an agreement. A plate belongs to at
// most one agreement.
type EnrolledVehicle struct {
	ID          int64              `gorm:"primaryKey" json:"id"`
	AgreementID int64              `gorm:"column:agreement_id;not null;index" json:"agreement_id"`
	Plate       string             `gorm:"column:plate;not null;uniqueIndex" json:"plate"`
	VehicleType domain.VehicleType `gorm:"column:vehicle_type;type:varchar(16)" json:"vehicle_type,omitempty"`
	OwnerName   string             `gorm:"column:owner_name" json:"owner_name,omitempty"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EnrolledVehicle) TableName() string { return "agreement_vehicles" }
