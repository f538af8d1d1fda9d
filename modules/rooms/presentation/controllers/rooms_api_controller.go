package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/campusgrid/schedule-api/modules/rooms/services"
	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

type RoomsAPIController struct {
	rooms *services.RoomsService
}

func NewRoomsAPIController(rooms *services.RoomsService) *RoomsAPIController {
	return &RoomsAPIController{rooms: rooms}
}

func (c *RoomsAPIController) Key() string {
	return "/auditories"
}

func (c *RoomsAPIController) Register(r *mux.Router) {
	r.HandleFunc("/auditories/free", c.GetFreeRooms).Methods(http.MethodGet)
}

func (c *RoomsAPIController) GetFreeRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dayOfWeek := strings.TrimSpace(q.Get("day_of_week"))
	if dayOfWeek == "" {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ROOMS_INVALID_QUERY", "day_of_week is required", nil)
		return
	}

	weekNumber, err := strconv.Atoi(q.Get("week_number"))
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ROOMS_INVALID_QUERY", "week_number must be an integer", nil)
		return
	}

	var buildingNumber *int
	if raw := q.Get("building_number"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "ROOMS_INVALID_QUERY", "building_number must be a positive integer", nil)
			return
		}
		buildingNumber = &parsed
	}

	rooms, err := c.rooms.FreeRooms(r.Context(), dayOfWeek, weekNumber, q.Get("time"), buildingNumber)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, rooms)
}
