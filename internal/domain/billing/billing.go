package billing

import (
	"time"

	"parkwash/internal/domain"
	"parkwash/internal/domain/agreement"
	"parkwash/internal/domain/rate"
	"parkwash/internal/domain/subscription"
)

// Input describes one stay to be priced.
type Input struct {
	Plate       string
	VehicleType domain.VehicleType
	EntryTime   time.Time
	ExitTime    time.Time
	HelmetCount int
	RateType    rate.Type
}

// Pricing is the snapshot of catalog state a charge is computed from. Nil
// fields mean "none configured" or "not applicable".
type Pricing struct {
	Rate         *rate.Rate
	HelmetRate   *rate.Rate
	Agreement    *agreement.Agreement
	Subscription *subscription.Subscription
}

// Charge is the priced stay with every intermediate figure kept for the
// receipt.
type Charge struct {
	RateType       rate.Type `json:"rate_type"`
	UnitPrice      int64     `json:"unit_price"`
	Units          int64     `json:"units"`
	ElapsedMinutes int64     `json:"elapsed_minutes"`
	Base           int64     `json:"base"`

	SubscriptionID *int64 `json:"subscription_id,omitempty"`
	AgreementID    *int64 `json:"agreement_id,omitempty"`
	DiscountPct    int    `json:"discount_pct"`
	ParkingAmount  int64  `json:"parking_amount"`

	HelmetCount     int   `json:"helmet_count"`
	HelmetUnitPrice int64 `json:"helmet_unit_price"`
	HelmetCharge    int64 `json:"helmet_charge"`

	Total int64 `json:"total"`
}

// Compute prices a stay. It has no side effects and reads no clock.
//
// Units are whole, rounded up, and at least one. A covering subscription
// zeroes the parking amount; otherwise an active agreement discounts it.
// Helmets are charged only for motorcycles, on top of either.
func Compute(in Input, p Pricing) (*Charge, error) {
	unit, ok := in.RateType.Unit()
	if !ok {
		return nil, ErrInvalidRateType
	}
	if in.HelmetCount < 0 {
		return nil, ErrInvalidHelmetCount
	}
	if p.Rate == nil || !p.Rate.IsActive {
		return nil, ErrRateNotConfigured.WithDetails(map[string]string{
			"vehicle_type": string(in.VehicleType),
			"rate_type":    string(in.RateType),
		})
	}

	elapsed := in.ExitTime.Sub(in.EntryTime)
	if elapsed < 0 {
		elapsed = 0
	}
	units := int64((elapsed + unit - 1) / unit)
	if units < 1 {
		units = 1
	}

	c := &Charge{
		RateType:       in.RateType,
		UnitPrice:      p.Rate.Price,
		Units:          units,
		ElapsedMinutes: int64(elapsed / time.Minute),
		Base:           units * p.Rate.Price,
		HelmetCount:    in.HelmetCount,
	}
	c.ParkingAmount = c.Base

	switch {
	case p.Subscription != nil:
		id := p.Subscription.ID
		c.SubscriptionID = &id
		c.ParkingAmount = 0
	case p.Agreement != nil && p.Agreement.IsActive:
		id := p.Agreement.ID
		c.AgreementID = &id
		c.DiscountPct = clampPct(p.Agreement.ParkingDiscountPct)
		c.ParkingAmount = ApplyDiscount(c.Base, c.DiscountPct)
	}

	if in.VehicleType.IsMotorcycle() && in.HelmetCount > 0 {
		if p.HelmetRate == nil || !p.HelmetRate.IsActive {
			return nil, ErrHelmetRateMissing
		}
		c.HelmetUnitPrice = p.HelmetRate.Price
		c.HelmetCharge = int64(in.HelmetCount) * p.HelmetRate.Price
	}

	c.Total = c.ParkingAmount + c.HelmetCharge
	if c.Total < 0 {
		c.Total = 0
	}
	return c, nil
}

// ApplyDiscount takes pct percent off amount, rounding the remainder up to
// the smallest currency unit. The result is never negative.
func ApplyDiscount(amount int64, pct int) int64 {
	pct = clampPct(pct)
	if amount <= 0 {
		return 0
	}
	keep := int64(100 - pct)
	return (amount*keep + 99) / 100
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
