package billing

import "parkwash/internal/pkg/apperror"

var (
	// ErrRateNotConfigured blocks an exit: a missing price is never billed as zero.
	ErrRateNotConfigured  = apperror.New(apperror.KindConfiguration, "RATE_NOT_CONFIGURED", "No active rate is configured for this vehicle type and rate type")
	ErrHelmetRateMissing  = apperror.New(apperror.KindConfiguration, "HELMET_RATE_NOT_CONFIGURED", "No active helmet rate is configured for motorcycles")
	ErrInvalidRateType    = apperror.New(apperror.KindValidation, "INVALID_RATE_TYPE", "Rate type must be MINUTE, HOUR, DAY or MONTH")
	ErrInvalidHelmetCount = apperror.New(apperror.KindValidation, "INVALID_HELMET_COUNT", "Helmet count must not be negative")
)
