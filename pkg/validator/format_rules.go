package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates that a string is a well-formed email address suitable
// for use as an account key. Stricter than RFC 5322 alone: the domain must be
// dotted and every label non-empty, which rejects addresses like "user@host"
// that parse but cannot receive mail on the public internet.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			parts := strings.Split(value, "@")
			if len(parts) != 2 {
				return false
			}

			local, domain := parts[0], parts[1]
			if local == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
