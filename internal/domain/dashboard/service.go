package dashboard

import (
	"context"
	"strings"
	"time"

	"parkwash/internal/domain"
	"parkwash/internal/pkg/apperror"
)

const dateLayout = "2006-01-02"

var ErrInvalidRange = apperror.New(apperror.KindValidation, "INVALID_DATE_RANGE", "start and end must be YYYY-MM-DD with start <= end")

type DayRevenue struct {
	Date    string `json:"date"`
	Parking int64  `json:"parking"`
	Washing int64  `json:"washing"`
	Total   int64  `json:"total"`
}

type Metrics struct {
	Start string `json:"start"`
	End   string `json:"end"`

	TotalRevenue   int64 `json:"total_revenue"`
	ParkingRevenue int64 `json:"parking_revenue"`
	WashingRevenue int64 `json:"washing_revenue"`
	TotalExpenses  int64 `json:"total_expenses"`
	NetIncome      int64 `json:"net_income"`

	VehiclesEntered int64            `json:"vehicles_entered"`
	VehiclesInside  int64            `json:"vehicles_inside"`
	WashingJobs     map[string]int64 `json:"washing_jobs"`

	ActiveSubscriptions   int64 `json:"active_subscriptions"`
	ExpiringSubscriptions int64 `json:"expiring_subscriptions"`
	ActiveAgreements      int64 `json:"active_agreements"`

	TopWashers   []WasherStats `json:"top_washers"`
	RevenueByDay []DayRevenue  `json:"revenue_by_day"`
}

// Service computes read-only management metrics. Calendar days are taken
// in the configured location.
type Service struct {
	repo         *Repository
	now          domain.Clock
	loc          *time.Location
	expiringDays int
}

func NewService(repo *Repository, loc *time.Location, expiringDays int) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, now: domain.SystemClock, loc: loc, expiringDays: expiringDays}
}

// SetClock replaces the time source; used by tests.
func (s *Service) SetClock(clock domain.Clock) { s.now = clock }

// Metrics covers the calendar days start through end inclusive. Empty
// bounds default to today.
func (s *Service) Metrics(ctx context.Context, start, end string) (*Metrics, error) {
	fromDay, toDay, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}
	from := time.Date(fromDay.Year(), fromDay.Month(), fromDay.Day(), 0, 0, 0, 0, s.loc).UTC()
	to := time.Date(toDay.Year(), toDay.Month(), toDay.Day()+1, 0, 0, 0, 0, s.loc).UTC()

	m := &Metrics{
		Start: fromDay.Format(dateLayout),
		End:   toDay.Format(dateLayout),
	}

	lines, err := s.repo.revenueLines(ctx, from, to)
	if err != nil {
		return nil, err
	}
	m.RevenueByDay = s.bucketByDay(lines, fromDay, toDay)
	for _, d := range m.RevenueByDay {
		m.ParkingRevenue += d.Parking
		m.WashingRevenue += d.Washing
	}
	m.TotalRevenue = m.ParkingRevenue + m.WashingRevenue

	if m.TotalExpenses, err = s.repo.expenseTotal(ctx, from, to); err != nil {
		return nil, err
	}
	m.NetIncome = m.TotalRevenue - m.TotalExpenses

	if m.VehiclesEntered, m.VehiclesInside, err = s.repo.sessionCounts(ctx, from, to); err != nil {
		return nil, err
	}
	if m.WashingJobs, err = s.repo.jobsByStatus(ctx, from, to); err != nil {
		return nil, err
	}
	if m.TopWashers, err = s.repo.topWashers(ctx, from, to, 5); err != nil {
		return nil, err
	}

	today := domain.DateOf(s.now(), s.loc)
	if m.ActiveSubscriptions, m.ExpiringSubscriptions, err = s.repo.subscriptionCounts(ctx, today, today.AddDate(0, 0, s.expiringDays)); err != nil {
		return nil, err
	}
	if m.ActiveAgreements, err = s.repo.activeAgreements(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) parseRange(start, end string) (time.Time, time.Time, error) {
	today := domain.DateOf(s.now(), s.loc)
	from, to := today, today

	if v := strings.TrimSpace(start); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return from, to, ErrInvalidRange
		}
		from = t
		if strings.TrimSpace(end) == "" {
			to = t
		}
	}
	if v := strings.TrimSpace(end); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return from, to, ErrInvalidRange
		}
		to = t
	}
	if to.Before(from) || domain.DaysBetween(from, to) > 366 {
		return from, to, ErrInvalidRange
	}
	return from, to, nil
}

// bucketByDay returns one entry per calendar day in range, empty days
// included.
func (s *Service) bucketByDay(lines []revenuePoint, fromDay, toDay time.Time) []DayRevenue {
	days := domain.DaysBetween(fromDay, toDay) + 1
	out := make([]DayRevenue, days)
	for i := range out {
		out[i].Date = fromDay.AddDate(0, 0, i).Format(dateLayout)
	}
	for _, l := range lines {
		i := domain.DaysBetween(fromDay, domain.DateOf(l.CreatedAt, s.loc))
		if i < 0 || i >= days {
			continue
		}
		switch l.Source {
		case "parking":
			out[i].Parking += l.Amount
		case "washing":
			out[i].Washing += l.Amount
		}
		out[i].Total += l.Amount
	}
	return out
}
