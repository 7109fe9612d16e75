// Package sanitizer normalises untrusted user input before it reaches
// validation or storage.
//
// Email helpers canonicalise addresses (trim, lowercase, dot consolidation)
// so that the same mailbox always maps to the same stored key, and mask
// addresses for log output. String helpers clean free-text fields such as
// display names.
//
// All functions are pure and stateless.
//
//	email := sanitizer.NormalizeEmail("  USER@Example.COM ") // "user@example.com"
//	name := sanitizer.SingleLine("Jane\nDoe")                // "Jane Doe"
package sanitizer
