package shift

import "time"

type OpenShiftRequest struct {
	InitialCash int64  `json:"initial_cash" validate:"gte=0"`
	Notes       string `json:"notes" validate:"max=500"`
}

type CloseShiftResponse struct {
	Shift     *Shift   `json:"shift"`
	FinalCash int64    `json:"final_cash"`
	Summary   *Summary `json:"summary"`
}

type CurrentShiftResponse struct {
	Shift   *Shift   `json:"shift"`
	Summary *Summary `json:"summary"`
}

type CreateExpenseRequest struct {
	ExpenseType string     `json:"expense_type" binding:"required" validate:"required,max=64"`
	Amount      int64      `json:"amount" validate:"gt=0"`
	Description string     `json:"description" validate:"max=500"`
	ExpenseDate *time.Time `json:"expense_date"`
}
