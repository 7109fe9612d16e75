package environment

import "strings"

// Environment represents the deployment environment of the running process.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a raw environment string to a canonical Environment. Unknown
// values fall back to Production so an unset or mistyped variable never
// exposes development surface.
func Parse(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "development", "dev", "local":
		return Development
	case "staging", "stage":
		return Staging
	default:
		return Production
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) String() string { return string(e) }
