package washing

import "parkwash/internal/pkg/apperror"

var (
	ErrJobNotFound        = apperror.New(apperror.KindNotFound, "WASHING_JOB_NOT_FOUND", "Washing job not found")
	ErrInvalidTransition  = apperror.New(apperror.KindState, "INVALID_JOB_TRANSITION", "Washing job is not in a state that allows this action")
	ErrNotAssignedWasher  = apperror.New(apperror.KindForbidden, "NOT_ASSIGNED_WASHER", "Only the assigned washer can complete this job")
	ErrInvalidPlate       = apperror.New(apperror.KindValidation, "INVALID_PLATE", "Plate is required")
	ErrInvalidVehicleType = apperror.New(apperror.KindValidation, "INVALID_VEHICLE_TYPE", "Unknown vehicle type")
	ErrInvalidPrice       = apperror.New(apperror.KindValidation, "INVALID_PRICE", "Price must not be negative")
	ErrInvalidStatus      = apperror.New(apperror.KindValidation, "INVALID_STATUS", "Status must be pending, in_progress or completed")
)
