// Package account exposes the HTTP surface for account access: local
// registration and login under /api/v1/auth, and the OAuth2
// authorization-code flow whose completion redirects carry the outcome back
// to the configured front-end address.
package account
