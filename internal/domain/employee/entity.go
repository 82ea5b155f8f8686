package employee

import "time"

type Role string

const (
	RoleGlobalAdmin      Role = "global_admin"
	RoleOperationalAdmin Role = "operational_admin"
	RoleWasher           Role = "washer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGlobalAdmin, RoleOperationalAdmin, RoleWasher:
		return true
	}
	return false
}

// Employee is anyone who signs in to the console: gate operators,
// administrators and washers.
type Employee struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name;not null" json:"full_name"`
	Username     string    `gorm:"column:username;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"column:role;type:varchar(32);not null;index" json:"role"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) IsWasher() bool {
	return e.Role == RoleWasher
}
