package subscription

import "time"

const dateLayout = "2006-01-02"

type CreateSubscriptionRequest struct {
	Plate        string `json:"plate" binding:"required" validate:"required,max=16"`
	VehicleType  string `json:"vehicle_type" binding:"required" validate:"required"`
	OwnerName    string `json:"owner_name" validate:"max=120"`
	OwnerPhone   string `json:"owner_phone" validate:"max=32"`
	MonthlyFee   int64  `json:"monthly_fee" validate:"gte=0"`
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days" validate:"gte=0,lte=366"`
	Notes        string `json:"notes" validate:"max=500"`
}

// SubscriptionResponse adds the derived fields the console shows.
type SubscriptionResponse struct {
	ID            int64     `json:"id"`
	Plate         string    `json:"vehicle_plate"`
	VehicleType   string    `json:"vehicle_type"`
	OwnerName     string    `json:"owner_name,omitempty"`
	OwnerPhone    string    `json:"owner_phone,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	MonthlyPrice  int64     `json:"price"`
	IsActive      bool      `json:"is_active"`
	Status        Status    `json:"status"`
	DaysRemaining int       `json:"days_remaining"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toResponse(s *Subscription, today time.Time, window int) SubscriptionResponse {
	return SubscriptionResponse{
		ID:            s.ID,
		Plate:         s.Plate,
		VehicleType:   string(s.VehicleType),
		OwnerName:     s.OwnerName,
		OwnerPhone:    s.OwnerPhone,
		StartDate:     s.StartDate.Format(dateLayout),
		EndDate:       s.EndDate.Format(dateLayout),
		MonthlyPrice:  s.MonthlyPrice,
		IsActive:      s.IsActive,
		Status:        s.StatusOn(today, window),
		DaysRemaining: s.DaysRemaining(today),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
