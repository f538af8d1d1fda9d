package services

import (
	"fmt"
	"net/http"
)

// ServiceError is the only failure type the transport layers see. The service
// layer classifies every fault into one of three kinds: not-found (terminal),
// ambiguous (actionable, carries candidates), unavailable (transient).
type ServiceError struct {
	Status     int
	Code       string
	Message    string
	Candidates []Employee
	Cause      error
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func (e *ServiceError) HTTPStatus() int   { return e.Status }
func (e *ServiceError) ErrorCode() string { return e.Code }

// Payload exposes the candidate list so an ambiguous outcome stays
// structurally distinguishable from a plain not-found.
func (e *ServiceError) Payload() any {
	if len(e.Candidates) == 0 {
		return nil
	}
	return struct {
		Matches []Employee `json:"matches"`
	}{Matches: e.Candidates}
}

func NewServiceError(status int, code, message string, cause error) *ServiceError {
	return &ServiceError{Status: status, Code: code, Message: message, Cause: cause}
}

func newNotFound(message string, cause error) *ServiceError {
	return NewServiceError(http.StatusNotFound, "SCHEDULE_NOT_FOUND", message, cause)
}

func newAmbiguous(candidates []Employee) *ServiceError {
	err := NewServiceError(http.StatusConflict, "SCHEDULE_AMBIGUOUS", "ambiguous identifier", nil)
	err.Candidates = candidates
	return err
}

func newUnavailable(cause error) *ServiceError {
	return NewServiceError(http.StatusServiceUnavailable, "SCHEDULE_UNAVAILABLE", "storage unavailable", cause)
}
