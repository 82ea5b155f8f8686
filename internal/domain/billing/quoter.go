package billing

import (
	"context"
	"fmt"
	"time"

	"parkwash/internal/domain"
	"parkwash/internal/domain/agreement"
	"parkwash/internal/domain/rate"
	"parkwash/internal/domain/subscription"
)

type RateSource interface {
	ActiveRate(ctx context.Context, vehicleType domain.VehicleType, rateType rate.Type) (*rate.Rate, error)
}

type AgreementSource interface {
	ActiveForPlate(ctx context.Context, plate string) (*agreement.Agreement, error)
}

type SubscriptionSource interface {
	ActiveForPlate(ctx context.Context, plate string, from, to time.Time) (*subscription.Subscription, error)
}

// Quoter reads the catalogs and hands a snapshot to Compute. It only reads,
// so callers run it before opening their write transaction.
type Quoter struct {
	rates           RateSource
	agreements      AgreementSource
	subscriptions   SubscriptionSource
	defaultRateType rate.Type
}

func NewQuoter(rates RateSource, agreements AgreementSource, subscriptions SubscriptionSource, defaultRateType rate.Type) *Quoter {
	if !defaultRateType.IsTimeBased() {
		defaultRateType = rate.TypeMinute
	}
	return &Quoter{
		rates:           rates,
		agreements:      agreements,
		subscriptions:   subscriptions,
		defaultRateType: defaultRateType,
	}
}

func (q *Quoter) DefaultRateType() rate.Type { return q.defaultRateType }

// Pricing collects the rate, helmet rate, agreement and subscription that
// apply to the stay.
func (q *Quoter) Pricing(ctx context.Context, in Input) (Pricing, error) {
	var p Pricing

	r, err := q.rates.ActiveRate(ctx, in.VehicleType, in.RateType)
	if err != nil {
		return p, fmt.Errorf("load rate: %w", err)
	}
	p.Rate = r

	if in.VehicleType.IsMotorcycle() && in.HelmetCount > 0 {
		hr, err := q.rates.ActiveRate(ctx, domain.VehicleMotorcycle, rate.TypeHelmet)
		if err != nil {
			return p, fmt.Errorf("load helmet rate: %w", err)
		}
		p.HelmetRate = hr
	}

	sub, err := q.subscriptions.ActiveForPlate(ctx, in.Plate, in.EntryTime, in.ExitTime)
	if err != nil {
		return p, fmt.Errorf("load subscription: %w", err)
	}
	p.Subscription = sub

	ag, err := q.agreements.ActiveForPlate(ctx, in.Plate)
	if err != nil {
		return p, fmt.Errorf("load agreement: %w", err)
	}
	p.Agreement = ag

	return p, nil
}

// Quote prices a stay end to end. An empty RateType uses the configured
// default.
func (q *Quoter) Quote(ctx context.Context, in Input) (*Charge, error) {
	if in.RateType == "" {
		in.RateType = q.defaultRateType
	}
	if !in.RateType.IsTimeBased() {
		return nil, ErrInvalidRateType
	}
	p, err := q.Pricing(ctx, in)
	if err != nil {
		return nil, err
	}
	return Compute(in, p)
}

// WashingPrice applies the plate's agreement washing discount to a fixed
// service price. Subscriptions never cover washing.
func (q *Quoter) WashingPrice(ctx context.Context, plate string, price int64) (int64, *agreement.Agreement, error) {
	ag, err := q.agreements.ActiveForPlate(ctx, plate)
	if err != nil {
		return 0, nil, fmt.Errorf("load agreement: %w", err)
	}
	if ag == nil || ag.WashingDiscountPct == 0 {
		return price, ag, nil
	}
	return ApplyDiscount(price, ag.WashingDiscountPct), ag, nil
}
