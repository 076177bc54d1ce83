package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  user@example.com  ",
			expected: "user@example.com",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\n+8801712345678\n\t",
			expected: "+8801712345678",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles whitespace-only string",
			input:    "   \t\n  ",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  Jo  Smith  ",
			expected: "Jo  Smith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestTrimToLower(t *testing.T) {
	assert.Equal(t, "bank", sanitizer.TrimToLower("  BANK "))
	assert.Equal(t, "", sanitizer.TrimToLower("   "))
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses spaces", "Jo    Smith", "Jo Smith"},
		{"collapses tabs and newlines", "Jo\t\n Smith", "Jo Smith"},
		{"trims edges", "  Jo Smith  ", "Jo Smith"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeWhitespace(tt.input))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x07c"))
	assert.Equal(t, "a\nb\tc", sanitizer.RemoveControlChars("a\nb\tc"))
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "221B Baker Street London", sanitizer.SingleLine("221B Baker Street\r\nLondon"))
	assert.Equal(t, "Main St", sanitizer.SingleLine("  Main   St  "))
}
