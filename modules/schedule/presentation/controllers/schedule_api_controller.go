package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

// ScheduleAPIController exposes schedule retrieval and the current-week
// endpoint. Failure kinds map to distinct statuses: not-found 404, ambiguous
// 409 with the candidate list, unavailable 503.
type ScheduleAPIController struct {
	schedules *services.ScheduleService
	system    *services.SystemService
}

func NewScheduleAPIController(schedules *services.ScheduleService, system *services.SystemService) *ScheduleAPIController {
	return &ScheduleAPIController{schedules: schedules, system: system}
}

func (c *ScheduleAPIController) Key() string {
	return "/schedule"
}

func (c *ScheduleAPIController) Register(r *mux.Router) {
	r.HandleFunc("/schedule/{entity_type}/{entity_identifier}", c.GetSchedule).Methods(http.MethodGet)
	r.HandleFunc("/system/current-week", c.GetCurrentWeek).Methods(http.MethodGet)
}

func (c *ScheduleAPIController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := services.EntityKind(vars["entity_type"])

	doc, err := c.schedules.GetSchedule(r.Context(), kind, vars["entity_identifier"])
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}

	// The document is stored JSON; it passes through untouched.
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

type currentWeekResponse struct {
	WeekNumber int `json:"week_number"`
}

func (c *ScheduleAPIController) GetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	week, err := c.system.GetCurrentWeek(r.Context())
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, currentWeekResponse{WeekNumber: week})
}
