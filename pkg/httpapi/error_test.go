package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

type statusErr struct {
	status  int
	code    string
	payload any
}

func (e *statusErr) Error() string     { return "boom" }
func (e *statusErr) HTTPStatus() int   { return e.status }
func (e *statusErr) ErrorCode() string { return e.code }
func (e *statusErr) Payload() any      { return e.payload }

func TestWriteServiceError_StatusError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := &statusErr{status: http.StatusConflict, code: "SCHEDULE_AMBIGUOUS", payload: map[string]int{"n": 2}}
	require.NoError(t, httpapi.WriteServiceError(rec, err))

	require.Equal(t, http.StatusConflict, rec.Code)
	var envelope httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "SCHEDULE_AMBIGUOUS", envelope.Code)
	require.Equal(t, "boom", envelope.Message)
	require.NotNil(t, envelope.Details)
}

func TestWriteServiceError_OpaqueErrorBecomes500(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, httpapi.WriteServiceError(rec, errors.New("pq: relation does not exist")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var envelope httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "INTERNAL", envelope.Code)
	require.NotContains(t, envelope.Message, "relation", "internal detail must not leak")
}

func TestWriteError_Meta(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, httpapi.WriteError(rec, http.StatusNotFound, "TOOLS_UNKNOWN_TOOL", "unknown tool", map[string]string{"suggestion": "schedule_get"}))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "schedule_get", envelope.Meta["suggestion"])
}
