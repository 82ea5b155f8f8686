package shift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Shift is one operator's cash drawer session. ActiveOperatorID equals
// OperatorID while the shift is open and is NULL afterwards; its unique
// index allows at most one active shift per operator.
type Shift struct {
	ID               int64      `gorm:"primaryKey" json:"id"`
	OperatorID       int64      `gorm:"column:operator_id;not null;index" json:"operator_id"`
	StartTime        time.Time  `gorm:"column:start_time;not null" json:"start_time"`
	EndTime          *time.Time `gorm:"column:end_time" json:"end_time,omitempty"`
	InitialCash      int64      `gorm:"column:initial_cash;not null" json:"initial_cash"`
	FinalCash        *int64     `gorm:"column:final_cash" json:"final_cash,omitempty"`
	Status           Status     `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	ActiveOperatorID *int64     `gorm:"column:active_operator_id;uniqueIndex" json:"-"`
	Notes            string     `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Shift) TableName() string { return "shifts" }

type Source string

const (
	SourceParking Source = "parking"
	SourceWashing Source = "washing"
)

// RevenueLine is a cash receipt. ShiftID attributes the income to the shift
// that started the service; CollectedShiftID is the drawer that took the
// cash and is what reconciliation sums.
type RevenueLine struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShiftID          int64     `gorm:"column:shift_id;not null;index" json:"shift_id"`
	CollectedShiftID int64     `gorm:"column:collected_shift_id;not null;index" json:"collected_shift_id"`
	Source           Source    `gorm:"column:source;type:varchar(16);not null;index" json:"source"`
	ReferenceID      int64     `gorm:"column:reference_id;not null" json:"reference_id"`
	Plate            string    `gorm:"column:plate" json:"plate,omitempty"`
	Amount           int64     `gorm:"column:amount;not null" json:"amount"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (RevenueLine) TableName() string { return "revenue_lines" }

func (l *RevenueLine) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Expense is cash taken out of a shift's drawer. Expenses are append-only.
type Expense struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	ShiftID     int64     `gorm:"column:shift_id;not null;index" json:"shift_id"`
	ExpenseType string    `gorm:"column:expense_type;not null" json:"expense_type"`
	Amount      int64     `gorm:"column:amount;not null" json:"amount"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	ExpenseDate time.Time `gorm:"column:expense_date;not null;index" json:"expense_date"`
	CreatedBy   int64     `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Expense) TableName() string { return "expenses" }

// Summary holds a shift's running totals. It is computed on demand and never
// stored.
type Summary struct {
	ShiftID        int64  `json:"shift_id"`
	Status         Status `json:"status"`
	InitialCash    int64  `json:"initial_cash"`
	ParkingRevenue int64  `json:"parking_revenue"`
	WashingRevenue int64  `json:"washing_revenue"`
	TotalRevenue   int64  `json:"total_revenue"`
	TotalExpenses  int64  `json:"total_expenses"`
	ExpectedCash   int64  `json:"expected_cash"`
	Transactions   int64  `json:"transactions"`
}
