package shift

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parkwash/internal/database"
	"parkwash/internal/domain"
	"parkwash/internal/pkg/validator"
)

// Service is the shift ledger. It is the only writer of shifts, revenue
// lines and expenses. Parking and washing call RequireActiveShift and
// RecordRevenue inside their own transactions.
type Service struct {
	db  *gorm.DB
	now domain.Clock
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: domain.SystemClock}
}

// SetClock replaces the time source; used by tests.
func (s *Service) SetClock(clock domain.Clock) { s.now = clock }

func (s *Service) OpenShift(ctx context.Context, operatorID int64, req OpenShiftRequest) (*Shift, error) {
	if req.InitialCash < 0 {
		return nil, ErrInvalidAmount
	}
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	existing, err := activeShift(s.db.WithContext(ctx), operatorID, false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrShiftAlreadyActive.WithDetails(map[string]int64{"shift_id": existing.ID})
	}

	op := operatorID
	sh := &Shift{
		OperatorID:       operatorID,
		StartTime:        s.now(),
		InitialCash:      req.InitialCash,
		Status:           StatusActive,
		ActiveOperatorID: &op,
		Notes:            req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(sh).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrShiftAlreadyActive
		}
		return nil, err
	}
	return sh, nil
}

// CloseShift reconciles and closes the operator's active shift:
// final_cash = initial_cash + revenue collected in the drawer - expenses.
func (s *Service) CloseShift(ctx context.Context, operatorID int64) (*CloseShiftResponse, error) {
	var out CloseShiftResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sh, err := activeShift(tx, operatorID, true)
		if err != nil {
			return err
		}
		if sh == nil {
			return ErrShiftNotFound
		}

		sum, err := summarize(tx, sh)
		if err != nil {
			return err
		}

		end := s.now()
		final := sum.ExpectedCash
		res := tx.Model(&Shift{}).
			Where("id = ? AND status = ?", sh.ID, StatusActive).
			Updates(map[string]any{
				"status":             StatusClosed,
				"end_time":           end,
				"final_cash":         final,
				"active_operator_id": gorm.Expr("NULL"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrShiftNotFound
		}

		sh.Status = StatusClosed
		sh.EndTime = &end
		sh.FinalCash = &final
		sh.ActiveOperatorID = nil
		sum.Status = StatusClosed

		out = CloseShiftResponse{Shift: sh, FinalCash: final, Summary: sum}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RequireActiveShift is the gate on every paid operation. It must be called
// with the caller's transaction; the shift row stays locked until that
// transaction ends so a concurrent close waits for it.
func (s *Service) RequireActiveShift(ctx context.Context, tx *gorm.DB, operatorID int64) (*Shift, error) {
	sh, err := activeShift(tx.WithContext(ctx), operatorID, true)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, ErrNoActiveShift
	}
	return sh, nil
}

// RecordRevenue appends a revenue line inside the caller's transaction.
func (s *Service) RecordRevenue(ctx context.Context, tx *gorm.DB, line *RevenueLine) error {
	if line.Amount < 0 {
		return ErrInvalidAmount
	}
	if line.Source != SourceParking && line.Source != SourceWashing {
		return ErrInvalidSource
	}
	if line.CollectedShiftID == 0 {
		line.CollectedShiftID = line.ShiftID
	}
	if line.CreatedAt.IsZero() {
		line.CreatedAt = s.now()
	}
	if err := tx.WithContext(ctx).Create(line).Error; err != nil {
		return fmt.Errorf("record revenue: %w", err)
	}
	return nil
}

// RecordExpense charges an expense to the operator's active shift.
func (s *Service) RecordExpense(ctx context.Context, operatorID int64, req CreateExpenseRequest) (*Expense, error) {
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	var exp Expense
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sh, err := s.RequireActiveShift(ctx, tx, operatorID)
		if err != nil {
			return err
		}

		now := s.now()
		date := now
		if req.ExpenseDate != nil {
			date = req.ExpenseDate.UTC()
		}
		exp = Expense{
			ShiftID:     sh.ID,
			ExpenseType: req.ExpenseType,
			Amount:      req.Amount,
			Description: req.Description,
			ExpenseDate: date,
			CreatedBy:   operatorID,
			CreatedAt:   now,
		}
		return tx.Create(&exp).Error
	})
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// CurrentShift returns the operator's active shift with its running totals,
// or nil when the operator is off shift.
func (s *Service) CurrentShift(ctx context.Context, operatorID int64) (*CurrentShiftResponse, error) {
	db := s.db.WithContext(ctx)
	sh, err := activeShift(db, operatorID, false)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, nil
	}
	sum, err := summarize(db, sh)
	if err != nil {
		return nil, err
	}
	return &CurrentShiftResponse{Shift: sh, Summary: sum}, nil
}

// ListShifts returns shifts newest first, optionally for one operator.
func (s *Service) ListShifts(ctx context.Context, operatorID int64, limit int) ([]Shift, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := s.db.WithContext(ctx).Order("start_time DESC, id DESC").Limit(limit)
	if operatorID > 0 {
		q = q.Where("operator_id = ?", operatorID)
	}
	var out []Shift
	err := q.Find(&out).Error
	return out, err
}

func (s *Service) ListExpenses(ctx context.Context, skip, limit int) ([]Expense, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []Expense
	err := s.db.WithContext(ctx).
		Order("expense_date DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (s *Service) Summary(ctx context.Context, shiftID int64) (*Summary, error) {
	var sh Shift
	err := s.db.WithContext(ctx).Where("id = ?", shiftID).First(&sh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound.WithMessage("Shift not found")
		}
		return nil, err
	}
	return summarize(s.db.WithContext(ctx), &sh)
}

// RevenueForShift lists the lines collected into a shift's drawer.
func (s *Service) RevenueForShift(ctx context.Context, shiftID int64) ([]RevenueLine, error) {
	var out []RevenueLine
	err := s.db.WithContext(ctx).
		Where("collected_shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func activeShift(db *gorm.DB, operatorID int64, forUpdate bool) (*Shift, error) {
	q := db
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var sh Shift
	err := q.Where("operator_id = ? AND status = ?", operatorID, StatusActive).First(&sh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sh, nil
}

func summarize(db *gorm.DB, sh *Shift) (*Summary, error) {
	var bySource []struct {
		Source Source
		Total  int64
		N      int64
	}
	err := db.Model(&RevenueLine{}).
		Select("source, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS n").
		Where("collected_shift_id = ?", sh.ID).
		Group("source").
		Scan(&bySource).Error
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	var expenses struct{ Total int64 }
	err = db.Model(&Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("shift_id = ?", sh.ID).
		Scan(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}

	sum := &Summary{
		ShiftID:       sh.ID,
		Status:        sh.Status,
		InitialCash:   sh.InitialCash,
		TotalExpenses: expenses.Total,
	}
	for _, row := range bySource {
		switch row.Source {
		case SourceParking:
			sum.ParkingRevenue += row.Total
		case SourceWashing:
			sum.WashingRevenue += row.Total
		}
		sum.TotalRevenue += row.Total
		sum.Transactions += row.N
	}
	sum.ExpectedCash = sum.InitialCash + sum.TotalRevenue - sum.TotalExpenses
	return sum, nil
}
