package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details any               `json:"details,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// StatusError is implemented by service-layer errors that carry their own
// transport mapping. Payload returns extra structured data for the envelope
// (e.g. disambiguation candidates) or nil.
type StatusError interface {
	error
	HTTPStatus() int
	ErrorCode() string
	Payload() any
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// WriteServiceError maps a service error onto the wire. Errors that do not
// implement StatusError become opaque 500s: classification belongs to the
// service layer, never to message inspection here.
func WriteServiceError(w http.ResponseWriter, err error) error {
	var se StatusError
	if errors.As(err, &se) {
		return WriteJSON(w, se.HTTPStatus(), &ErrorEnvelope{
			Code:    se.ErrorCode(),
			Message: se.Error(),
			Details: se.Payload(),
		})
	}
	return WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
}
