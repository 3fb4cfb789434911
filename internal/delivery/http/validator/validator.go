// Package validator adapts go-playground/validator to echo, collecting every
// failed rule into the [{field, message}] shape the API serves.
package validator

import (
	"fmt"
	"strings"

	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator with the project's rule vocabulary registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// ticket: a complete picks array, exactly six entries each carrying a value.
	_ = v.RegisterValidation("ticket", func(fl validator.FieldLevel) bool {
		picks, ok := fl.Field().Interface().([]entity.NumberPick)
		if !ok {
			return false
		}
		if len(picks) != entity.MaxTicketPicks {
			return false
		}

		return allPicksCarryValues(picks)
	})

	// picks: a partial ticket, up to six entries each carrying a value.
	_ = v.RegisterValidation("picks", func(fl validator.FieldLevel) bool {
		picks, ok := fl.Field().Interface().([]entity.NumberPick)
		if !ok {
			return false
		}
		if len(picks) > entity.MaxTicketPicks {
			return false
		}

		return allPicksCarryValues(picks)
	})

	return &Validator{validate: v}
}

func allPicksCarryValues(picks []entity.NumberPick) bool {
	for _, pick := range picks {
		if pick.Value == 0 {
			return false
		}
	}

	return true
}

// Validate checks the struct and returns a ValidationError carrying every
// failed rule, never just the first.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "",
			Message: "Input validation failed.",
		})
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, domainerrors.FieldError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: messageFor(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// messageFor renders one failed rule as a user-facing message.
func messageFor(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return "Please enter a valid email address."
	case "numeric":
		return fmt.Sprintf("The %s field must be numeric.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters long.", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters long.", field, fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("The %s field must be a valid date.", field)
	case "eqfield":
		return "The passwords do not match."
	case "dive":
		return fmt.Sprintf("The %s field contains an invalid entry.", field)
	case "ticket":
		return fmt.Sprintf("The %s field must hold %d picked numbers.", field, entity.MaxTicketPicks)
	case "picks":
		return fmt.Sprintf("The %s field holds at most %d picked numbers, each with a value.", field, entity.MaxTicketPicks)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
