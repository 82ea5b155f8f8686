package washing

type CreateJobRequest struct {
	Plate       string `json:"plate" binding:"required" validate:"required,max=16"`
	VehicleType string `json:"vehicle_type"`
	OwnerName   string `json:"owner_name" validate:"max=120"`
	OwnerPhone  string `json:"owner_phone" validate:"max=32"`
	ServiceType string `json:"service_type" validate:"max=64"`
	Price       int64  `json:"price"`
	Notes       string `json:"notes" validate:"max=500"`
	SessionID   *int64 `json:"session_id"`
}

type AssignRequest struct {
	WasherID int64 `json:"washer_id" binding:"required"`
}
