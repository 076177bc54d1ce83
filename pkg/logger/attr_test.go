package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/logger"
)

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)

	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "abc", logger.RequestID("abc").Value.String())

	assert.Equal(t, "login", logger.Form("login").Value.String())
	assert.Equal(t, "auth", logger.Component("auth").Value.String())
	assert.Equal(t, "cart-1", logger.CartID("cart-1").Value.String())
	assert.Equal(t, []string{"email"}, logger.Fields([]string{"email"}).Value.Any())
}

func TestContactIsMasked(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Contact(""))
	assert.Equal(t, "u***@example.com", logger.Contact("user@example.com").Value.String())
	assert.Equal(t, "*********5678", logger.Contact("+8801712345678").Value.String())
}
