package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/modules/schedule/presentation/controllers"
	"github.com/campusgrid/schedule-api/modules/schedule/services"
)

type stubEmployeeRepo struct {
	matches []services.Employee
}

func (s *stubEmployeeRepo) GetByURLID(_ context.Context, _ string) (services.Employee, error) {
	return services.Employee{}, services.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) Search(_ context.Context, _ string, _ int) ([]services.Employee, error) {
	return s.matches, nil
}

type stubScheduleRepo struct {
	groups map[string]json.RawMessage
}

func (s *stubScheduleRepo) FindCurrentByGroup(_ context.Context, groupName string) (json.RawMessage, error) {
	doc, ok := s.groups[groupName]
	if !ok {
		return nil, services.ErrScheduleNotFound
	}
	return doc, nil
}

func (s *stubScheduleRepo) FindCurrentByEmployee(_ context.Context, _ int64) (json.RawMessage, error) {
	return nil, services.ErrScheduleNotFound
}

type stubSystemRepo struct {
	value string
}

func (s *stubSystemRepo) GetStateValue(_ context.Context, _ string) (string, error) {
	if s.value == "" {
		return "", services.ErrStateNotFound
	}
	return s.value, nil
}

type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string) ([]byte, bool) { return nil, false }

func (noopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) {}

func newRouter(schedules *stubScheduleRepo, employees *stubEmployeeRepo, system *stubSystemRepo) *mux.Router {
	scheduleService := services.NewScheduleService(schedules, employees, noopCache{}, time.Minute)
	systemService := services.NewSystemService(system, noopCache{}, time.Minute)
	r := mux.NewRouter()
	controllers.NewScheduleAPIController(scheduleService, systemService).Register(r)
	return r
}

func TestGetSchedule_ReturnsStoredDocument(t *testing.T) {
	t.Parallel()

	router := newRouter(
		&stubScheduleRepo{groups: map[string]json.RawMessage{"221703": json.RawMessage(`{"group":"221703"}`)}},
		&stubEmployeeRepo{},
		&stubSystemRepo{},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/group/221703", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"group":"221703"}`, rec.Body.String())
}

func TestGetSchedule_NotFoundEnvelope(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubScheduleRepo{}, &stubEmployeeRepo{}, &stubSystemRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/group/000000", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "SCHEDULE_NOT_FOUND", envelope.Code)
}

func TestGetSchedule_AmbiguousCarriesMatches(t *testing.T) {
	t.Parallel()

	router := newRouter(
		&stubScheduleRepo{},
		&stubEmployeeRepo{matches: []services.Employee{
			{ID: 501, URLID: "ivanov-i-i", FirstName: "Ivan", LastName: "Ivanov"},
			{ID: 502, URLID: "ivanov-p-p", FirstName: "Petr", LastName: "Ivanov"},
		}},
		&stubSystemRepo{},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/employee/Ivanov", nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	var envelope struct {
		Code    string `json:"code"`
		Details struct {
			Matches []services.Employee `json:"matches"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "SCHEDULE_AMBIGUOUS", envelope.Code)
	require.Len(t, envelope.Details.Matches, 2)
}

func TestGetCurrentWeek(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubScheduleRepo{}, &stubEmployeeRepo{}, &stubSystemRepo{value: "3"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/system/current-week", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"week_number":3}`, rec.Body.String())
}
