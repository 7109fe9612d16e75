package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.+`)

// NormalizeEmail canonicalises an email address so equal mailboxes compare
// equal: trims whitespace, lowercases, and consolidates consecutive dots in
// the local part. Strings without exactly one "@" are returned trimmed and
// lowercased but otherwise untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := dotRegex.ReplaceAllString(parts[0], ".")
	local = strings.Trim(local, ".")

	return local + "@" + parts[1]
}

// ExtractEmailDomain returns the lowercased domain part, or "" when the
// input is not a plausible address.
func ExtractEmailDomain(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// MaskEmail hides the local part except its first character while keeping the
// domain readable, so addresses can appear in logs without exposing the
// mailbox.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	switch len(local) {
	case 0:
		return email
	case 1:
		return "*@" + parts[1]
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + parts[1]
}
