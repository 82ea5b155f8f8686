package subscription

import (
	"time"

	"parkwash/internal/domain"
)

// Status is derived from the calendar at read time and never stored.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

const DefaultExpiringWindowDays = 7

// Subscription is a prepaid monthly parking entitlement for one plate.
// StartDate and EndDate are calendar dates stored at midnight UTC; EndDate
// is the last covered day.
type Subscription struct {
	ID           int64              `gorm:"primaryKey" json:"id"`
	Plate        string             `gorm:"column:plate;not null;index" json:"vehicle_plate"`
	VehicleType  domain.VehicleType `gorm:"column:vehicle_type;type:varchar(16)" json:"vehicle_type"`
	OwnerName    string             `gorm:"column:owner_name" json:"owner_name,omitempty"`
	OwnerPhone   string             `gorm:"column:owner_phone" json:"owner_phone,omitempty"`
	StartDate    time.Time          `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      time.Time          `gorm:"column:end_date;not null;index" json:"end_date"`
	MonthlyPrice int64              `gorm:"column:monthly_price;not null" json:"price"`
	IsActive     bool               `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Notes        string             `gorm:"column:notes" json:"notes,omitempty"`
	CancelledAt  *time.Time         `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

// DaysRemaining counts calendar days from today to EndDate; negative once
// expired.
func (s *Subscription) DaysRemaining(today time.Time) int {
	return domain.DaysBetween(today, s.EndDate)
}

// StatusOn derives the status for the given calendar day.
func (s *Subscription) StatusOn(today time.Time, expiringWindowDays int) Status {
	days := s.DaysRemaining(today)
	switch {
	case days < 0:
		return StatusExpired
	case days <= expiringWindowDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}

// Covers reports whether the subscription is usable on every day from
// fromDay to toDay inclusive.
func (s *Subscription) Covers(fromDay, toDay time.Time) bool {
	if !s.IsActive {
		return false
	}
	return domain.DaysBetween(s.StartDate, fromDay) >= 0 && domain.DaysBetween(toDay, s.EndDate) >= 0
}
