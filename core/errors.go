package core

import (
	"errors"
	"net/http"
	"time"

	"github.com/lilknig/ember-api/pkg/validator"
)

// HTTPError is a client-facing failure bound to an HTTP status. Message is
// safe to show to clients; internal causes never travel inside it.
type HTTPError struct {
	Status  int
	Message string
}

func (e HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError with an arbitrary status.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{Status: status, Message: message}
}

func BadRequest(message string) HTTPError {
	return HTTPError{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) HTTPError {
	return HTTPError{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) HTTPError {
	return HTTPError{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) HTTPError {
	return HTTPError{Status: http.StatusNotFound, Message: message}
}

// Internal is the generic 500. Internal detail stays in the logs.
func Internal() HTTPError {
	return HTTPError{Status: http.StatusInternalServerError, Message: "Internal server error"}
}

// Error renders err as a failure envelope. Validation failures become a 400
// with the aggregated field errors as data; HTTPError values keep their
// status and message; anything else collapses to the generic 500.
func Error(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		writeEnvelope(w, http.StatusBadRequest, Envelope{
			StatusCode: http.StatusBadRequest,
			Success:    false,
			Message:    "Validation failed",
			Data:       fieldErrors(verrs),
			Timestamp:  time.Now().UTC(),
		})
		return
	}

	httpErr := Internal()
	errors.As(err, &httpErr)
	writeEnvelope(w, httpErr.Status, Envelope{
		StatusCode: httpErr.Status,
		Success:    false,
		Message:    httpErr.Message,
		Data:       nil,
		Timestamp:  time.Now().UTC(),
	})
}

func fieldErrors(verrs validator.ValidationErrors) map[string][]string {
	details := make(map[string][]string, len(verrs))
	for _, field := range verrs.Fields() {
		details[field] = verrs.Get(field)
	}
	return details
}
