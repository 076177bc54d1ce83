package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

func TestNewField(t *testing.T) {
	t.Parallel()

	t.Run("defaults label and messages", func(t *testing.T) {
		t.Parallel()
		f, err := validator.NewField("password", validator.Required(), validator.WithMaxLength(20, ""))
		require.NoError(t, err)
		assert.Equal(t, "password", f.Name())
		assert.Equal(t, "password", f.Label())
		assert.True(t, f.IsRequired())

		_, failure, ok := f.Check("")
		assert.False(t, ok)
		assert.Equal(t, "password is required", failure.Message)

		_, failure, ok = f.Check(strings.Repeat("a", 21))
		assert.False(t, ok)
		assert.Equal(t, "password cannot exceed 20 characters", failure.Message)
	})

	t.Run("label drives required message", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("name", validator.WithLabel("Full name"), validator.Required())
		_, failure, ok := f.Check("")
		assert.False(t, ok)
		assert.Equal(t, "Full name is required", failure.Message)
		assert.Equal(t, "required", failure.Rule)
	})

	t.Run("custom required message", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("city", validator.WithRequiredMessage("Tell us your city"))
		assert.True(t, f.IsRequired())
		_, failure, _ := f.Check("")
		assert.Equal(t, "Tell us your city", failure.Message)
	})

	configErrors := []struct {
		name  string
		field string
		opts  []validator.FieldOption
	}{
		{"empty field name", " ", nil},
		{"empty rule name", "email", []validator.FieldOption{
			validator.WithRules(validator.FieldRule{Check: validator.IsEmail, Message: "x"}),
		}},
		{"nil predicate", "email", []validator.FieldOption{
			validator.WithRules(validator.FieldRule{Name: "email", Message: "x"}),
		}},
		{"duplicate rule", "email", []validator.FieldOption{
			validator.WithRules(validator.Email("a"), validator.Email("b")),
		}},
		{"negative max length", "password", []validator.FieldOption{
			validator.WithMaxLength(-1, "x"),
		}},
		{"nil sanitizer", "name", []validator.FieldOption{
			validator.WithSanitizers(nil),
		}},
	}
	for _, tt := range configErrors {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := validator.NewField(tt.field, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidFieldSpec)
		})
	}

	t.Run("MustField panics on configuration errors", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { validator.MustField("") })
	})
}

func TestFieldSpec_Check(t *testing.T) {
	t.Parallel()

	t.Run("trim runs before the required check", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("email", validator.Required(), validator.Trimmed())
		value, failure, ok := f.Check("   ")
		assert.False(t, ok)
		assert.Equal(t, "", value)
		assert.Equal(t, "required", failure.Rule)
	})

	t.Run("untrimmed whitespace is not empty", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("password", validator.Required())
		value, _, ok := f.Check("   ")
		assert.True(t, ok)
		assert.Equal(t, "   ", value)
	})

	t.Run("required short circuits the rule chain", func(t *testing.T) {
		t.Parallel()
		called := false
		f := validator.MustField("email", validator.Required(), validator.WithRules(validator.FieldRule{
			Name:    "spy",
			Check:   func(string) bool { called = true; return false },
			Message: "spy",
		}))
		_, failure, ok := f.Check("")
		assert.False(t, ok)
		assert.Equal(t, "required", failure.Rule)
		assert.False(t, called)
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("code", validator.WithRules(
			validator.MinLength(3, "first"),
			validator.FieldRule{Name: "never", Check: func(string) bool { return false }, Message: "second"},
		))
		_, failure, ok := f.Check("ab")
		assert.False(t, ok)
		assert.Equal(t, "first", failure.Message)

		_, failure, ok = f.Check("abc")
		assert.False(t, ok)
		assert.Equal(t, "second", failure.Message)
	})

	t.Run("max length is checked after the rule chain", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("password",
			validator.WithRules(validator.PasswordStrength("weak")),
			validator.WithMaxLength(20, "too long"),
		)

		_, failure, ok := f.Check(strings.Repeat("a", 25))
		assert.False(t, ok)
		assert.Equal(t, "weak", failure.Message)

		_, failure, ok = f.Check("Passw0rd1234567890123")
		assert.False(t, ok)
		assert.Equal(t, "too long", failure.Message)
		assert.Equal(t, "max-length", failure.Rule)
	})

	t.Run("max length counts characters not bytes", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("city", validator.WithMaxLength(5, "too long"))
		_, _, ok := f.Check("Åland")
		assert.True(t, ok)
	})

	t.Run("sanitizers run after trimming", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("email", validator.Trimmed(), validator.WithSanitizers(strings.ToLower))
		value, _, ok := f.Check("  USER@Example.com ")
		assert.True(t, ok)
		assert.Equal(t, "user@example.com", value)
	})

	t.Run("rules returned are a copy", func(t *testing.T) {
		t.Parallel()
		f := validator.MustField("email", validator.WithRules(validator.Email("bad")))
		rules := f.Rules()
		rules[0].Message = "changed"
		assert.Equal(t, "bad", f.Rules()[0].Message)
	})
}
