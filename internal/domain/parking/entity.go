package parking

import (
	"time"

	"parkwash/internal/domain"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Session is one vehicle's occupancy from entry to exit. OpenPlate mirrors
// Plate while the vehicle is inside and is NULL after exit; its unique index
// keeps a plate from occupying two sessions at once.
type Session struct {
	ID            int64              `gorm:"primaryKey" json:"id"`
	Plate         string             `gorm:"column:plate;not null;index" json:"plate"`
	VehicleType   domain.VehicleType `gorm:"column:vehicle_type;type:varchar(16);not null" json:"vehicle_type"`
	OwnerName     string             `gorm:"column:owner_name" json:"owner_name,omitempty"`
	OwnerPhone    string             `gorm:"column:owner_phone" json:"owner_phone,omitempty"`
	HelmetCount   int                `gorm:"column:helmet_count;not null;default:0" json:"helmet_count"`
	EntryTime     time.Time          `gorm:"column:entry_time;not null;index" json:"entry_time"`
	ExitTime      *time.Time         `gorm:"column:exit_time" json:"exit_time,omitempty"`
	TotalCost     *int64             `gorm:"column:total_cost" json:"total_cost,omitempty"`
	PaymentStatus PaymentStatus      `gorm:"column:payment_status;type:varchar(16);not null" json:"payment_status"`
	RateType      string             `gorm:"column:rate_type;type:varchar(16)" json:"rate_type,omitempty"`
	Notes         string             `gorm:"column:notes" json:"notes,omitempty"`
	ShiftID       int64              `gorm:"column:shift_id;not null;index" json:"shift_id"`
	ExitShiftID   *int64             `gorm:"column:exit_shift_id" json:"exit_shift_id,omitempty"`
	OpenPlate     *string            `gorm:"column:open_plate;uniqueIndex" json:"-"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Session) TableName() string { return "parking_sessions" }

func (s *Session) IsOpen() bool { return s.ExitTime == nil }

// DurationMinutes is the stay so far for an open session, or the final stay
// once closed.
func (s *Session) DurationMinutes(now time.Time) int64 {
	end := now
	if s.ExitTime != nil {
		end = *s.ExitTime
	}
	d := end.Sub(s.EntryTime)
	if d < 0 {
		return 0
	}
	return int64(d / time.Minute)
}
