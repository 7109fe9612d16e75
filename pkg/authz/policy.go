package authz

import (
	"slices"

	"github.com/lilknig/ember-api/pkg/auth"
	"github.com/lilknig/ember-api/pkg/environment"
)

// Rule binds a set of ant-style path patterns to an access requirement.
type Rule struct {
	Patterns []string
	Access   Access
}

// Public declares paths reachable without credentials.
func Public(patterns ...string) Rule {
	return Rule{Patterns: patterns, Access: Access{Level: LevelPublic}}
}

// DevOnly declares paths open in development and absent elsewhere.
func DevOnly(patterns ...string) Rule {
	return Rule{Patterns: patterns, Access: Access{Level: LevelDevOnly}}
}

// RequireRole declares paths restricted to principals carrying role.
func RequireRole(role auth.Role, patterns ...string) Rule {
	return Rule{Patterns: patterns, Access: Access{Level: LevelRole, Role: role}}
}

// Authenticated declares paths requiring any authenticated principal.
func Authenticated(patterns ...string) Rule {
	return Rule{Patterns: patterns, Access: Access{Level: LevelAuthenticated}}
}

// Policy is an ordered, first-match-wins rule list. Paths matching no rule
// require an authenticated principal, so nothing is anonymous by omission.
type Policy struct {
	rules []Rule
}

// NewPolicy installs the given rules in order. DevOnly rules are dropped
// outside development, which makes their paths fall through to later rules
// exactly as if the rule had never been declared.
func NewPolicy(env environment.Environment, rules ...Rule) *Policy {
	installed := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Access.Level == LevelDevOnly && !env.IsDevelopment() {
			continue
		}
		installed = append(installed, rule)
	}
	return &Policy{rules: installed}
}

// Rules returns the installed rules in evaluation order.
func (p *Policy) Rules() []Rule {
	return slices.Clone(p.rules)
}

// Evaluate resolves the access requirement for path; the first matching
// pattern wins.
func (p *Policy) Evaluate(path string) Access {
	for _, rule := range p.rules {
		for _, pattern := range rule.Patterns {
			if Match(pattern, path) {
				return rule.Access
			}
		}
	}
	return Access{Level: LevelAuthenticated}
}
