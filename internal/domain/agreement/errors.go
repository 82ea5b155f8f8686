package agreement

import "parkwash/internal/pkg/apperror"

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, "AGREEMENT_NOT_FOUND", "Agreement not found")
	ErrVehicleNotEnrolled = apperror.New(apperror.KindNotFound, "VEHICLE_NOT_ENROLLED", "Vehicle is not enrolled in this agreement")
	ErrPlateEnrolled      = apperror.New(apperror.KindConflict, "PLATE_ALREADY_ENROLLED", "Plate is already enrolled in an agreement")
	ErrInvalidPlate       = apperror.New(apperror.KindValidation, "INVALID_PLATE", "Plate is required")
	ErrInvalidVehicleType = apperror.New(apperror.KindValidation, "INVALID_VEHICLE_TYPE", "Unknown vehicle type")
)
