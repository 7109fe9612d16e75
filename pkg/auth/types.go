package auth

import (
	"time"

	"github.com/google/uuid"
)

// Provider identifies the authentication origin of an account.
// It is assigned at creation and never rewritten.
type Provider string

const (
	ProviderLocal  Provider = "LOCAL"
	ProviderGoogle Provider = "GOOGLE"
)

func (p Provider) String() string { return string(p) }

// Role is the coarse permission level attached to an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

// User is the canonical account record backed by the users table.
// PasswordHash is empty for federated accounts and never leaves the server.
type User struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	Name               string
	Provider           Provider
	ProviderExternalID string
	Role               Role
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Profile is the client-facing view of a User. Credential material has no
// field here, so it cannot end up in a response by accident.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Provider  Provider  `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the serializable view of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Provider:  u.Provider,
		CreatedAt: u.CreatedAt,
	}
}
