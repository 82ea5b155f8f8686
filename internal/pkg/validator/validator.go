package validator

import (
	"github.com/go-playground/validator/v10"

	"parkwash/internal/pkg/apperror"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ErrInvalidInput is returned by Check when struct validation fails; the
// failing fields are attached as details.
var ErrInvalidInput = apperror.New(apperror.KindValidation, "VALIDATION_ERROR", "Invalid input")

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// Check runs Validate and converts failures into a validation error.
func Check(v interface{}) error {
	if fields := Validate(v); fields != nil {
		return ErrInvalidInput.WithDetails(fields)
	}
	return nil
}
