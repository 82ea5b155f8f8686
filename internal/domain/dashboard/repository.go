package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type WasherStats struct {
	WasherID  int64  `db:"washer_id" json:"washer_id"`
	FullName  string `db:"full_name" json:"full_name"`
	Completed int64  `db:"completed" json:"completed"`
	Revenue   int64  `db:"revenue" json:"revenue"`
}

type revenuePoint struct {
	Source    string    `db:"source"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

// Repository runs the read-only aggregate queries behind the dashboard.
// Queries are written with ? placeholders and rebound for the driver.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) revenueLines(ctx context.Context, from, to time.Time) ([]revenuePoint, error) {
	query := r.db.Rebind(`
		SELECT source, amount, created_at
		FROM revenue_lines
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC
	`)
	var out []revenuePoint
	if err := r.db.SelectContext(ctx, &out, query, from, to); err != nil {
		return nil, fmt.Errorf("revenue lines: %w", err)
	}
	return out, nil
}

func (r *Repository) expenseTotal(ctx context.Context, from, to time.Time) (int64, error) {
	query := r.db.Rebind(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE expense_date >= ? AND expense_date < ?
	`)
	var total int64
	if err := r.db.GetContext(ctx, &total, query, from, to); err != nil {
		return 0, fmt.Errorf("expenses: %w", err)
	}
	return total, nil
}

func (r *Repository) sessionCounts(ctx context.Context, from, to time.Time) (entered, inside int64, err error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM parking_sessions WHERE entry_time >= ? AND entry_time < ?`)
	if err = r.db.GetContext(ctx, &entered, query, from, to); err != nil {
		return 0, 0, fmt.Errorf("sessions entered: %w", err)
	}
	if err = r.db.GetContext(ctx, &inside, `SELECT COUNT(*) FROM parking_sessions WHERE exit_time IS NULL`); err != nil {
		return 0, 0, fmt.Errorf("sessions inside: %w", err)
	}
	return entered, inside, nil
}

func (r *Repository) jobsByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	query := r.db.Rebind(`
		SELECT status, COUNT(*) AS count
		FROM washing_jobs
		WHERE created_at >= ? AND created_at < ?
		GROUP BY status
	`)
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("jobs by status: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *Repository) topWashers(ctx context.Context, from, to time.Time, limit int) ([]WasherStats, error) {
	query := r.db.Rebind(`
		SELECT j.washer_id AS washer_id, e.full_name AS full_name,
		       COUNT(*) AS completed, COALESCE(SUM(j.amount_charged), 0) AS revenue
		FROM washing_jobs j
		JOIN employees e ON e.id = j.washer_id
		WHERE j.status = ? AND j.end_time >= ? AND j.end_time < ?
		GROUP BY j.washer_id, e.full_name
		ORDER BY completed DESC, revenue DESC
		LIMIT ?
	`)
	out := []WasherStats{}
	if err := r.db.SelectContext(ctx, &out, query, "completed", from, to, limit); err != nil {
		return nil, fmt.Errorf("top washers: %w", err)
	}
	return out, nil
}

func (r *Repository) subscriptionCounts(ctx context.Context, today, expiringBy time.Time) (active, expiring int64, err error) {
	query := r.db.Rebind(`
		SELECT COUNT(*) FROM subscriptions
		WHERE is_active = ? AND start_date <= ? AND end_date >= ?
	`)
	if err = r.db.GetContext(ctx, &active, query, true, today, today); err != nil {
		return 0, 0, fmt.Errorf("active subscriptions: %w", err)
	}

	query = r.db.Rebind(`
		SELECT COUNT(*) FROM subscriptions
		WHERE is_active = ? AND end_date >= ? AND end_date <= ?
	`)
	if err = r.db.GetContext(ctx, &expiring, query, true, today, expiringBy); err != nil {
		return 0, 0, fmt.Errorf("expiring subscriptions: %w", err)
	}
	return active, expiring, nil
}

func (r *Repository) activeAgreements(ctx context.Context) (int64, error) {
	var n int64
	query := r.db.Rebind(`SELECT COUNT(*) FROM agreements WHERE is_active = ?`)
	if err := r.db.GetContext(ctx, &n, query, true); err != nil {
		return 0, fmt.Errorf("active agreements: %w", err)
	}
	return n, nil
}
