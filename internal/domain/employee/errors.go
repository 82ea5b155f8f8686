package employee

import "parkwash/internal/pkg/apperror"

var (
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
	ErrInactive           = apperror.New(apperror.KindForbidden, "EMPLOYEE_INACTIVE", "Employee account is disabled")
	ErrNotFound           = apperror.New(apperror.KindNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found")
	ErrUsernameTaken      = apperror.New(apperror.KindConflict, "USERNAME_TAKEN", "Username is already in use")
	ErrInvalidRole        = apperror.New(apperror.KindValidation, "INVALID_ROLE", "Role must be one of global_admin, operational_admin, washer")

	// ErrInvalidWasher covers a washer id that does not exist, is disabled or
	// belongs to a non-washer.
	ErrInvalidWasher = apperror.New(apperror.KindValidation, "INVALID_WASHER", "Washer does not exist, is inactive or is not a washer")
)
