package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusgrid/schedule-api/modules/events/services"
	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

type EventsAPIController struct {
	events *services.EventService
}

func NewEventsAPIController(events *services.EventService) *EventsAPIController {
	return &EventsAPIController{events: events}
}

func (c *EventsAPIController) Key() string {
	return "/events"
}

func (c *EventsAPIController) Register(r *mux.Router) {
	r.HandleFunc("/events/search", c.Search).Methods(http.MethodGet)
	r.HandleFunc("/events/day", c.Day).Methods(http.MethodGet)
	r.HandleFunc("/events/auditory", c.Auditory).Methods(http.MethodGet)
}

func (c *EventsAPIController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var weekNumber *int
	if raw := q.Get("week_number"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "EVENTS_INVALID_QUERY", "week_number must be an integer", nil)
			return
		}
		weekNumber = &parsed
	}

	// Without an entity the search spans every entity's events.
	if q.Get("entity_name") == "" {
		limit := 0
		if raw := q.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				_ = httpapi.WriteError(w, http.StatusBadRequest, "EVENTS_INVALID_QUERY", "limit must be an integer", nil)
				return
			}
			limit = parsed
		}
		events, err := c.events.GlobalSearchEvents(r.Context(), q.Get("q"), weekNumber, limit)
		if err != nil {
			_ = httpapi.WriteServiceError(w, err)
			return
		}
		_ = httpapi.WriteJSON(w, http.StatusOK, events)
		return
	}

	events, err := c.events.SearchEvents(r.Context(), q.Get("entity_name"), q.Get("q"), weekNumber)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, events)
}

func (c *EventsAPIController) Day(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	weekNumber, err := strconv.Atoi(q.Get("week_number"))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "EVENTS_INVALID_QUERY", "week_number must be an integer", nil)
		return
	}
	dayOfWeek, err := strconv.Atoi(q.Get("day_of_week"))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "EVENTS_INVALID_QUERY", "day_of_week must be an integer", nil)
		return
	}

	events, err := c.events.DayEvents(r.Context(), q.Get("entity_name"), weekNumber, dayOfWeek)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, events)
}

func (c *EventsAPIController) Auditory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	weekNumber, err := strconv.Atoi(q.Get("week_number"))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "EVENTS_INVALID_QUERY", "week_number must be an integer", nil)
		return
	}
	dayOfWeek, err := strconv.Atoi(q.Get("day_of_week"))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "EVENTS_INVALID_QUERY", "day_of_week must be an integer", nil)
		return
	}

	events, err := c.events.RoomEvents(r.Context(), q.Get("auditory"), weekNumber, dayOfWeek, q.Get("time"))
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, events)
}
