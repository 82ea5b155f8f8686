package subscription

import "parkwash/internal/pkg/apperror"

var (
	ErrSubscriptionNotFound = apperror.New(apperror.KindNotFound, "SUBSCRIPTION_NOT_FOUND", "Subscription not found")
	ErrInvalidPlate         = apperror.New(apperror.KindValidation, "INVALID_PLATE", "Plate is required")
	ErrInvalidVehicleType   = apperror.New(apperror.KindValidation, "INVALID_VEHICLE_TYPE", "Unknown vehicle type")
	ErrInvalidStartDate     = apperror.New(apperror.KindValidation, "INVALID_START_DATE", "start_date must be formatted as YYYY-MM-DD")
	ErrOverlap              = apperror.New(apperror.KindConflict, "SUBSCRIPTION_OVERLAP", "Plate already has an active subscription for this period")
	ErrAlreadyCancelled     = apperror.New(apperror.KindState, "SUBSCRIPTION_CANCELLED", "Subscription is already cancelled")
)
