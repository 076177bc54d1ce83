package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "Email or phone number is required"})
		assert.Equal(t, "validation failed: email: Email or phone number is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "email", Message: "first"})
	errs.Add(validator.ValidationError{Field: "email", Message: "second"})
	errs.Add(validator.ValidationError{Field: "name", Message: "bad name"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("password"))
	assert.Equal(t, "first", errs.Get("email"))
	assert.Equal(t, "", errs.Get("password"))
	assert.Equal(t, []string{"email", "name"}, errs.Fields())
	assert.Equal(t, map[string]string{"email": "first", "name": "bad name"}, errs.Map())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{{Field: "email", Message: "bad"}}
	wrapped := fmt.Errorf("login: %w", verrs)

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.Equal(t, verrs, validator.ExtractValidationErrors(wrapped))

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
}
