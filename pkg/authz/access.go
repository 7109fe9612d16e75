package authz

import "github.com/lilknig/ember-api/pkg/auth"

// Level classifies who may reach a path.
type Level int

const (
	// LevelPublic paths are reachable without credentials.
	LevelPublic Level = iota
	// LevelDevOnly behaves like LevelPublic but the rule is only installed
	// in development; elsewhere the path falls through to later rules.
	LevelDevOnly
	// LevelRole requires an authenticated principal with a specific role.
	LevelRole
	// LevelAuthenticated requires any authenticated principal.
	LevelAuthenticated
)

func (l Level) String() string {
	switch l {
	case LevelPublic:
		return "public"
	case LevelDevOnly:
		return "dev-only"
	case LevelRole:
		return "role"
	case LevelAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Access is the resolved requirement for a request path. Role is only
// meaningful when Level is LevelRole.
type Access struct {
	Level Level
	Role  auth.Role
}
