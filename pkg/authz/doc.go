// Package authz implements route authorization as an explicit ordered rule
// table instead of router-registration side effects.
//
// A Policy is a list of (patterns, access) rules evaluated first-match-wins
// by a pure function; paths matching nothing require authentication, so no
// route becomes anonymous by omission. Patterns are ant-style: a trailing
// "/**" matches the prefix and everything below it, "*" matches one path
// segment. The installed table is inspectable through Rules(), which lets
// tests assert that rule ordering itself carries the intended semantics.
//
// Middleware enforces the policy per request. Credentials arrive as HTTP
// Basic and are verified through the same login path the auth endpoint uses;
// there is no separate session or token state.
package authz
