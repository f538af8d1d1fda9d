package services

import (
	"context"
	"net/http"
	"time"

	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
)

type FreeRoom struct {
	Name     string  `json:"name"`
	Capacity *int32  `json:"capacity,omitempty"`
	RoomType *string `json:"auditory_type,omitempty"`
}

type RoomsRepository interface {
	// ListFreeRooms returns rooms with no occupancy entry covering the given
	// day/week/time, optionally restricted to one building.
	ListFreeRooms(ctx context.Context, dayOfWeek string, weekNumber int, at time.Time, buildingNumber *int) ([]FreeRoom, error)
}

type RoomsService struct {
	repo RoomsRepository
}

func NewRoomsService(repo RoomsRepository) *RoomsService {
	return &RoomsService{repo: repo}
}

func (s *RoomsService) FreeRooms(ctx context.Context, dayOfWeek string, weekNumber int, at string, buildingNumber *int) ([]FreeRoom, error) {
	checkTime, err := time.Parse("15:04", at)
	if err != nil {
		return nil, scheduleservices.NewServiceError(http.StatusBadRequest, "ROOMS_INVALID_TIME", "invalid time format, use HH:MM", err)
	}
	if weekNumber < 1 || weekNumber > 4 {
		return nil, scheduleservices.NewServiceError(http.StatusBadRequest, "ROOMS_INVALID_WEEK", "week_number must be between 1 and 4", nil)
	}

	rooms, err := s.repo.ListFreeRooms(ctx, dayOfWeek, weekNumber, checkTime, buildingNumber)
	if err != nil {
		return nil, scheduleservices.NewServiceError(http.StatusServiceUnavailable, "ROOMS_UNAVAILABLE", "storage unavailable", err)
	}
	return rooms, nil
}
