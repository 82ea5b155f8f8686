package agreement

type CreateAgreementRequest struct {
	Name            string `json:"name" binding:"required" validate:"required,max=120"`
	ContactName     string `json:"contact_name" validate:"max=120"`
	ContactPhone    string `json:"contact_phone" validate:"max=32"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
	ParkingDiscount int    `json:"parking_discount" validate:"gte=0,lte=100"`
	WashingDiscount int    `json:"washing_discount" validate:"gte=0,lte=100"`
}

type EnrollVehicleRequest struct {
	Plate       string `json:"plate" binding:"required"`
	VehicleType string `json:"vehicle_type"`
	OwnerName   string `json:"owner_name"`
}

type SetStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
