package rate

import (
	"strings"
	"time"

	"parkwash/internal/domain"
)

// Type is the billing granularity a rate prices.
type Type string

const (
	TypeMinute Type = "MINUTE"
	TypeHour   Type = "HOUR"
	TypeDay    Type = "DAY"
	TypeMonth  Type = "MONTH"
	// TypeHelmet is a flat per-helmet charge for motorcycles.
	TypeHelmet Type = "HELMET"
)

var typeAliases = map[string]Type{
	"MINUTE": TypeMinute,
	"MINUTO": TypeMinute,
	"HOUR":   TypeHour,
	"HORA":   TypeHour,
	"DAY":    TypeDay,
	"DIA":    TypeDay,
	"MONTH":  TypeMonth,
	"MES":    TypeMonth,
	"HELMET": TypeHelmet,
	"CASCO":  TypeHelmet,
}

func ParseType(s string) (Type, bool) {
	t, ok := typeAliases[strings.ToUpper(strings.TrimSpace(s))]
	return t, ok
}

// Unit is the length of one billable unit. HELMET has none.
func (t Type) Unit() (time.Duration, bool) {
	switch t {
	case TypeMinute:
		return time.Minute, true
	case TypeHour:
		return time.Hour, true
	case TypeDay:
		return 24 * time.Hour, true
	case TypeMonth:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

// IsTimeBased reports whether the type can price a stay.
func (t Type) IsTimeBased() bool {
	_, ok := t.Unit()
	return ok
}

// Rate prices one (vehicle type, rate type) pair. At most one rate per pair
// is active: ActiveKey is set only while IsActive and carries a unique index.
type Rate struct {
	ID          int64              `gorm:"primaryKey" json:"id"`
	VehicleType domain.VehicleType `gorm:"column:vehicle_type;type:varchar(16);not null;index:idx_rates_pair" json:"vehicle_type"`
	RateType    Type               `gorm:"column:rate_type;type:varchar(16);not null;index:idx_rates_pair" json:"rate_type"`
	Price       int64              `gorm:"column:price;not null" json:"price"`
	Description string             `gorm:"column:description" json:"description,omitempty"`
	IsActive    bool               `gorm:"column:is_active;not null;default:false" json:"is_active"`
	ActiveKey   *string            `gorm:"column:active_key;uniqueIndex" json:"-"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Rate) TableName() string { return "rates" }

func pairKey(vt domain.VehicleType, rt Type) string {
	return string(vt) + ":" + string(rt)
}

// syncActiveKey keeps ActiveKey consistent with IsActive before a write.
func (r *Rate) syncActiveKey() {
	if r.IsActive {
		k := pairKey(r.VehicleType, r.RateType)
		r.ActiveKey = &k
		return
	}
	r.ActiveKey = nil
}
