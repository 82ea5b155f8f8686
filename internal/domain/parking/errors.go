package parking

import "parkwash/internal/pkg/apperror"

var (
	ErrAlreadyParked      = apperror.New(apperror.KindConflict, "VEHICLE_ALREADY_PARKED", "Vehicle already has an open session")
	ErrSessionNotFound    = apperror.New(apperror.KindNotFound, "SESSION_NOT_FOUND", "No open session for this plate")
	ErrAlreadyExited      = apperror.New(apperror.KindConflict, "SESSION_ALREADY_CLOSED", "Session was closed by another request")
	ErrInvalidPlate       = apperror.New(apperror.KindValidation, "INVALID_PLATE", "Plate is required")
	ErrInvalidVehicleType = apperror.New(apperror.KindValidation, "INVALID_VEHICLE_TYPE", "Unknown vehicle type")
	ErrInvalidHelmetCount = apperror.New(apperror.KindValidation, "INVALID_HELMET_COUNT", "Helmet count must not be negative")
	ErrInvalidRateType    = apperror.New(apperror.KindValidation, "INVALID_RATE_TYPE", "Rate type must be MINUTE, HOUR, DAY or MONTH")
	ErrInvalidFilter      = apperror.New(apperror.KindValidation, "INVALID_STATUS_FILTER", "status_filter must be all, active or completed")
)
