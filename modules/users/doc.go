// Package users exposes the read-only user endpoints backed by the user
// store. Responses carry profile views; credential material never appears.
package users
