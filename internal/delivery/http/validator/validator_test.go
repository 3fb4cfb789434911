package validator

import (
	"testing"

	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"omitempty,eqfield=Password"`
}

type ticketForm struct {
	Nums []entity.NumberPick `validate:"ticket"`
}

type picksForm struct {
	Nums []entity.NumberPick `validate:"picks"`
}

func fieldsOf(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	return validationErr.Fields()
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{
		Email:           "user@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})

	assert.NoError(t, err)
}

func TestValidator_CollectsEveryFailure(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	fields := fieldsOf(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "Please enter a valid email address.", fields[0].Message)
	assert.Equal(t, "password", fields[1].Field)
	assert.Equal(t, "The password field is required.", fields[1].Message)
}

func TestValidator_PasswordMismatch(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{
		Email:           "user@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter23",
	})
	require.Error(t, err)

	fields := fieldsOf(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "The passwords do not match.", fields[0].Message)
}

func TestValidator_TicketRule(t *testing.T) {
	v := New()

	complete := make([]entity.NumberPick, entity.MaxTicketPicks)
	for i := range complete {
		complete[i] = entity.NumberPick{Value: i + 1, Rate: 10}
	}
	assert.NoError(t, v.Validate(ticketForm{Nums: complete}))

	short := complete[:entity.MaxTicketPicks-1]
	assert.Error(t, v.Validate(ticketForm{Nums: short}))

	missingValue := make([]entity.NumberPick, entity.MaxTicketPicks)
	copy(missingValue, complete)
	missingValue[3].Value = 0
	assert.Error(t, v.Validate(ticketForm{Nums: missingValue}))

	assert.Error(t, v.Validate(ticketForm{Nums: nil}))
}

func TestValidator_PicksRule(t *testing.T) {
	v := New()

	two := []entity.NumberPick{{Value: 5, Rate: 1}, {Value: 10, Rate: 9}}
	assert.NoError(t, v.Validate(picksForm{Nums: two}))

	assert.NoError(t, v.Validate(picksForm{Nums: nil}))

	overfull := make([]entity.NumberPick, entity.MaxTicketPicks+1)
	for i := range overfull {
		overfull[i] = entity.NumberPick{Value: i + 1}
	}
	assert.Error(t, v.Validate(picksForm{Nums: overfull}))

	assert.Error(t, v.Validate(picksForm{Nums: []entity.NumberPick{{Value: 0, Rate: 3}}}))
}

func TestValidator_ValidationErrorHTTPCode(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, 400, validationErr.HTTPCode())
}
