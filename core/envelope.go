package core

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is the uniform JSON body every endpoint returns. StatusCode
// always mirrors the HTTP status actually sent on the wire.
type Envelope struct {
	StatusCode int       `json:"status_code"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Data       any       `json:"data"`
	Timestamp  time.Time `json:"timestamp"`
}

// JSON writes a success envelope with the given status, message and payload.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	writeEnvelope(w, status, Envelope{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

func writeEnvelope(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
