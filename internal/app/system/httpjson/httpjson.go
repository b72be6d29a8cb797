// Package httpjson holds the JSON boundary helpers shared by all feature
// handlers: response writing, request decoding, and the error vocabulary
// (validation, conflict, unauthorized, service-unavailable).
//
// Error bodies follow the {"detail": "..."} shape clients already consume.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; none of the API's payloads are large.
const maxBodyBytes = 1 << 20

// errorBody is the JSON structure for all error responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v as JSON with status 200.
func OK(w http.ResponseWriter, v any) {
	Respond(w, http.StatusOK, v)
}

// Error writes an error body with the given status code.
func Error(w http.ResponseWriter, status int, detail string) {
	Respond(w, status, errorBody{Detail: detail})
}

// Unprocessable reports a validation failure (422).
func Unprocessable(w http.ResponseWriter, detail string) {
	Error(w, http.StatusUnprocessableEntity, detail)
}

// Conflict reports a duplicate-resource failure (409).
func Conflict(w http.ResponseWriter, detail string) {
	Error(w, http.StatusConflict, detail)
}

// Unauthorized reports a credential failure (401).
func Unauthorized(w http.ResponseWriter, detail string) {
	Error(w, http.StatusUnauthorized, detail)
}

// ServiceUnavailable reports that the persistence backend is down (503).
func ServiceUnavailable(w http.ResponseWriter) {
	Error(w, http.StatusServiceUnavailable, "service unavailable")
}

// Internal logs err and reports a generic 500. The error detail stays in the
// log, not the response.
func Internal(w http.ResponseWriter, log *zap.Logger, msg string, err error) {
	if log != nil {
		log.Error(msg, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "internal server error")
}

// Decode reads the request body into dst. It returns a client-facing message
// on failure so handlers can pass it straight to Unprocessable.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
