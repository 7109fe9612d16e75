// Package core owns the HTTP response contract shared by every module: the
// JSON envelope, the client-facing error taxonomy, and strict JSON request
// binding.
//
// Every response body is an Envelope whose status_code mirrors the real HTTP
// status. Success responses go through JSON; failures go through Error, which
// maps validation failures to a 400 with a field-error map, HTTPError values
// to their own status, and everything else to the generic 500 without leaking
// internal detail.
package core
