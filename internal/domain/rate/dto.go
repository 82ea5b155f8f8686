package rate

type RateRequest struct {
	VehicleType string `json:"vehicle_type" binding:"required" validate:"required"`
	RateType    string `json:"rate_type" binding:"required" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Description string `json:"description" validate:"max=255"`
	IsActive    *bool  `json:"is_active"`
}
