package validator

import (
	"fmt"
	"regexp"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordPolicy configures the StrongPassword rule. Length bounds are hard
// requirements; character-class requirements are opt-in so deployments can
// tighten the policy without code changes.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int
}

// DefaultPasswordPolicy returns the baseline policy: at least 6 characters,
// at most 72 (the bcrypt input limit), no character-class requirements.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 6,
		MaxLength: 72,
	}
}

// StrongPassword validates a password against the given policy.
func StrongPassword(field, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < policy.MinLength || len(value) > policy.MaxLength {
				return false
			}

			hasUpper := uppercaseRegex.MatchString(value)
			hasLower := lowercaseRegex.MatchString(value)
			hasDigit := digitRegex.MatchString(value)
			hasSpecial := specialCharRegex.MatchString(value)

			charClasses := 0
			for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
				if has {
					charClasses++
				}
			}

			if policy.RequireUppercase && !hasUpper {
				return false
			}
			if policy.RequireLowercase && !hasLower {
				return false
			}
			if policy.RequireDigits && !hasDigit {
				return false
			}
			if policy.RequireSpecial && !hasSpecial {
				return false
			}

			return charClasses >= policy.MinCharClasses
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", policy.MinLength),
		},
	}
}
