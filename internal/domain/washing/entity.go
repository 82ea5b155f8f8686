package washing

import (
	"time"

	"parkwash/internal/domain"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

const DefaultServiceType = "General"

// Job is a washing order. Price is what the customer was quoted and never
// changes; AmountCharged is the price after the plate's agreement discount
// and is what the drawer received.
type Job struct {
	ID            int64              `gorm:"primaryKey" json:"id"`
	Plate         string             `gorm:"column:plate;not null;index" json:"plate"`
	VehicleType   domain.VehicleType `gorm:"column:vehicle_type;type:varchar(16)" json:"vehicle_type"`
	OwnerName     string             `gorm:"column:owner_name" json:"owner_name,omitempty"`
	OwnerPhone    string             `gorm:"column:owner_phone" json:"owner_phone,omitempty"`
	ServiceType   string             `gorm:"column:service_type;not null" json:"service_type"`
	Price         int64              `gorm:"column:price;not null" json:"price"`
	AmountCharged int64              `gorm:"column:amount_charged;not null" json:"amount_charged"`
	AgreementID   *int64             `gorm:"column:agreement_id" json:"agreement_id,omitempty"`
	Status        Status             `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	WasherID      *int64             `gorm:"column:washer_id;index" json:"washer_id,omitempty"`
	StartTime     *time.Time         `gorm:"column:start_time" json:"start_time,omitempty"`
	EndTime       *time.Time         `gorm:"column:end_time" json:"end_time,omitempty"`
	Notes         string             `gorm:"column:notes" json:"notes,omitempty"`
	SessionID     *int64             `gorm:"column:session_id;index" json:"session_id,omitempty"`
	ShiftID       int64              `gorm:"column:shift_id;not null;index" json:"shift_id"`
	CreatedBy     int64              `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt     time.Time          `gorm:"column:created_at;not null;index" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string { return "washing_jobs" }
