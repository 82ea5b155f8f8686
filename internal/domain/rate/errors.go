package rate

import "parkwash/internal/pkg/apperror"

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, "RATE_NOT_FOUND", "Rate not found")
	ErrInvalidVehicleType = apperror.New(apperror.KindValidation, "INVALID_VEHICLE_TYPE", "Unknown vehicle type")
	ErrInvalidRateType    = apperror.New(apperror.KindValidation, "INVALID_RATE_TYPE", "Rate type must be one of MINUTE, HOUR, DAY, MONTH, HELMET")
	ErrHelmetVehicle      = apperror.New(apperror.KindValidation, "HELMET_RATE_VEHICLE", "Helmet rates only apply to motorcycles")
	ErrActiveConflict     = apperror.New(apperror.KindConflict, "ACTIVE_RATE_CONFLICT", "Another active rate for this vehicle and rate type was written concurrently")
)
