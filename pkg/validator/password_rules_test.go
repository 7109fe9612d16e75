package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lilknig/ember-api/pkg/validator"
)

func TestDefaultPasswordPolicy(t *testing.T) {
	t.Parallel()

	policy := validator.DefaultPasswordPolicy()
	assert.Equal(t, 6, policy.MinLength)
	assert.Equal(t, 72, policy.MaxLength)
	assert.Zero(t, policy.MinCharClasses)
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	t.Run("default policy", func(t *testing.T) {
		t.Parallel()
		policy := validator.DefaultPasswordPolicy()

		tests := []struct {
			name  string
			value string
			valid bool
		}{
			{name: "exactly six characters", value: "secret", valid: true},
			{name: "typical password", value: "secret1", valid: true},
			{name: "five characters", value: "short", valid: false},
			{name: "empty", value: "", valid: false},
			{name: "over bcrypt limit", value: strings.Repeat("x", 73), valid: false},
			{name: "at bcrypt limit", value: strings.Repeat("x", 72), valid: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.valid, validator.StrongPassword("password", tt.value, policy).Check())
			})
		}
	})

	t.Run("character class requirements", func(t *testing.T) {
		t.Parallel()
		policy := validator.PasswordPolicy{
			MinLength:        6,
			MaxLength:        72,
			RequireUppercase: true,
			RequireDigits:    true,
		}

		assert.True(t, validator.StrongPassword("password", "Secret1", policy).Check())
		assert.False(t, validator.StrongPassword("password", "secret1", policy).Check())
		assert.False(t, validator.StrongPassword("password", "Secrets", policy).Check())
	})

	t.Run("minimum class count", func(t *testing.T) {
		t.Parallel()
		policy := validator.PasswordPolicy{MinLength: 6, MaxLength: 72, MinCharClasses: 3}

		assert.True(t, validator.StrongPassword("password", "Secret1", policy).Check())
		assert.False(t, validator.StrongPassword("password", "secret1", policy).Check())
	})
}
