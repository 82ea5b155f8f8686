package parking

import (
	"time"

	"parkwash/internal/domain/billing"
)

type EntryRequest struct {
	Plate       string `json:"plate" binding:"required" validate:"required,max=16"`
	VehicleType string `json:"vehicle_type" binding:"required" validate:"required"`
	OwnerName   string `json:"owner_name" validate:"max=120"`
	OwnerPhone  string `json:"owner_phone" validate:"max=32"`
	HelmetCount int    `json:"helmet_count"`
	Notes       string `json:"notes" validate:"max=500"`
}

type ExitRequest struct {
	Plate    string `json:"plate" binding:"required" validate:"required"`
	RateType string `json:"rate_type"`
}

// SessionView is a session with its read-time projections.
type SessionView struct {
	Session
	Status          string `json:"status"`
	DurationMinutes int64  `json:"duration_minutes"`
}

type ExitResponse struct {
	Session   SessionView     `json:"session"`
	AmountDue int64           `json:"amount_due"`
	Breakdown *billing.Charge `json:"breakdown"`
}

func toView(s *Session, now time.Time) SessionView {
	status := "active"
	if !s.IsOpen() {
		status = "completed"
	}
	return SessionView{
		Session:         *s,
		Status:          status,
		DurationMinutes: s.DurationMinutes(now),
	}
}
