package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "User@Example.COM", "user@example.com"},
		{"trims", "  user@example.com ", "user@example.com"},
		{"consolidates dots in local part", "first..last@example.com", "first.last@example.com"},
		{"strips edge dots in local part", ".user.@example.com", "user@example.com"},
		{"keeps invalid input", "not-an-email", "not-an-email"},
		{"keeps multiple at signs", "a@b@c.com", "a@b@c.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "u***@example.com", sanitizer.MaskEmail("user@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("u@example.com"))
	assert.Equal(t, "@example.com", sanitizer.MaskEmail("@example.com"))
	assert.Equal(t, "plain", sanitizer.MaskEmail("plain"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "8801712345678", sanitizer.NormalizePhone("+880 1712-345678"))
	assert.Equal(t, "", sanitizer.NormalizePhone("abc"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*********5678", sanitizer.MaskPhone("+8801712345678"))
	assert.Equal(t, "***", sanitizer.MaskPhone("123"))
}

func TestMaskContact(t *testing.T) {
	assert.Equal(t, "u***@example.com", sanitizer.MaskContact("user@example.com"))
	assert.Equal(t, "******7890", sanitizer.MaskContact("1234567890"))
}
