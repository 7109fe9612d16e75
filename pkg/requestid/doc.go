// Package requestid assigns a correlation identifier to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header when the client sends
// one and generates a UUID otherwise. The chosen id is echoed back in the
// response, stored in the request context, and surfaces in log records via
// LogExtractor, so all records emitted while serving one request share the
// same request_id attribute.
package requestid
