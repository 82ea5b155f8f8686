package shift

import "parkwash/internal/pkg/apperror"

var (
	ErrShiftAlreadyActive = apperror.New(apperror.KindConflict, "SHIFT_ALREADY_ACTIVE", "Operator already has an active shift")
	ErrNoActiveShift      = apperror.New(apperror.KindPrecondition, "NO_ACTIVE_SHIFT", "Operator has no active shift")
	ErrShiftNotFound      = apperror.New(apperror.KindNotFound, "SHIFT_NOT_FOUND", "No active shift found")
	ErrInvalidAmount      = apperror.New(apperror.KindValidation, "INVALID_AMOUNT", "Amount must not be negative")
	ErrInvalidSource      = apperror.New(apperror.KindValidation, "INVALID_REVENUE_SOURCE", "Revenue source must be parking or washing")
)
