package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/handler"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	return rec
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data with meta and status", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON([]int{1, 2},
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"count": 2}),
		))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":[1,2],"meta":{"count":2}}`, rec.Body.String())
	})

	t.Run("error value becomes error envelope", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSON(handler.ErrConflict))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"conflict","message":"Conflict"}}`, rec.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("validation errors", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Field: "contact", Rule: "required", Message: "Email or phone number is required"},
			{Field: "password", Rule: "max-length", Message: "Password cannot exceed 20 characters"},
		}
		rec := render(t, handler.JSONError(errs))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"validation_error","message":"Validation failed","details":{
			"contact":"Email or phone number is required",
			"password":"Password cannot exceed 20 characters"}}}`, rec.Body.String())
	})

	t.Run("unknown error hides message", func(t *testing.T) {
		t.Parallel()
		rec := render(t, handler.JSONError(errors.New("db password leaked")))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "leaked")
	})
}
