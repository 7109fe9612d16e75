// Package auth implements the identity core: local email/password
// registration and login, bcrypt credential hashing, and OAuth2 federated
// login with account reconciliation.
//
// The package is transport-free. It exposes:
//
//   - PasswordHasher: one-way hashing, verification and the acceptance
//     policy for raw passwords.
//   - Service: Register and Login against a UserStore. Login folds every
//     failure into ErrInvalidCredentials so the API cannot be used to probe
//     which emails exist.
//   - Resolver: reconciles a verified provider assertion with the canonical
//     user record. One email belongs to exactly one provider; a mismatch is
//     a conflict, never a merge.
//   - OAuthService: state-token management and adapter dispatch for the
//     authorization-code flow. Google is wired through NewGoogleAdapter,
//     which verifies callback ID tokens via OIDC discovery.
//
// Persistence and state storage are supplied through the UserStore and
// StateStore interfaces; the postgres and redis implementations live under
// storage/. All services accept functional options and default to a discard
// logger.
package auth
