// Package validator provides small, composable validation rules for request
// input.
//
// Every exported helper constructs a Rule pairing a boolean Check with the
// field-level error it reports. Rules are evaluated with Apply, which
// aggregates all failures into a ValidationErrors value implementing the
// error interface, so a handler can surface every field problem in a single
// response instead of failing on the first.
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.ValidEmail("email", email),
//	    validator.StrongPassword("password", password, validator.DefaultPasswordPolicy()),
//	)
//
// The package has no hidden state; rules are cheap value constructions and
// safe for concurrent use.
package validator
