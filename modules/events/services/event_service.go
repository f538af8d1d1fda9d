package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
)

// Event is a single lesson occurrence denormalized for clients: display
// names are resolved here so consumers never join against the directory.
type Event struct {
	Subject     string  `json:"subject"`
	SubjectFull *string `json:"subject_full,omitempty"`
	WeekNumbers []int32 `json:"week_numbers"`
	DayOfWeek   *int32  `json:"day_of_week,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Auditories  []string `json:"auditories"`

	EntityName string `json:"entity_name"`
	EntityType string `json:"entity_type"`
	// Human readable owner name: the employee's full name when the entity is
	// a known employee, otherwise the entity name as stored (group number).
	EntityDisplayName    string   `json:"entity_display_name"`
	TeachersDisplayNames []string `json:"teachers_display_names"`

	Subgroup *int32 `json:"subgroup,omitempty"`
}

type EventRepository interface {
	SearchEvents(ctx context.Context, entityName, query string, weekNumber *int) ([]Event, error)
	// SearchAllEvents matches subjects across every entity; limit bounds the
	// result set.
	SearchAllEvents(ctx context.Context, query string, weekNumber *int, limit int) ([]Event, error)
	ListDayEvents(ctx context.Context, entityName string, weekNumber, dayOfWeek int) ([]Event, error)
	ListRoomEvents(ctx context.Context, auditory string, weekNumber, dayOfWeek int, at *time.Time) ([]Event, error)
}

const (
	defaultGlobalSearchLimit = 50
	maxGlobalSearchLimit     = 100
)

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) SearchEvents(ctx context.Context, entityName, query string, weekNumber *int) ([]Event, error) {
	if strings.TrimSpace(entityName) == "" {
		return nil, invalidQuery("entity_name is required", nil)
	}
	if strings.TrimSpace(query) == "" {
		return nil, invalidQuery("q is required", nil)
	}
	events, err := s.repo.SearchEvents(ctx, entityName, query, weekNumber)
	if err != nil {
		return nil, unavailable(err)
	}
	return events, nil
}

// GlobalSearchEvents searches subjects without an owning entity. A limit at
// or below zero takes the default; anything above the cap is clamped.
func (s *EventService) GlobalSearchEvents(ctx context.Context, query string, weekNumber *int, limit int) ([]Event, error) {
	if strings.TrimSpace(query) == "" {
		return nil, invalidQuery("q is required", nil)
	}
	if limit < 1 {
		limit = defaultGlobalSearchLimit
	}
	if limit > maxGlobalSearchLimit {
		limit = maxGlobalSearchLimit
	}
	events, err := s.repo.SearchAllEvents(ctx, query, weekNumber, limit)
	if err != nil {
		return nil, unavailable(err)
	}
	return events, nil
}

func (s *EventService) DayEvents(ctx context.Context, entityName string, weekNumber, dayOfWeek int) ([]Event, error) {
	if strings.TrimSpace(entityName) == "" {
		return nil, invalidQuery("entity_name is required", nil)
	}
	events, err := s.repo.ListDayEvents(ctx, entityName, weekNumber, dayOfWeek)
	if err != nil {
		return nil, unavailable(err)
	}
	return events, nil
}

func (s *EventService) RoomEvents(ctx context.Context, auditory string, weekNumber, dayOfWeek int, at string) ([]Event, error) {
	if strings.TrimSpace(auditory) == "" {
		return nil, invalidQuery("auditory is required", nil)
	}

	var checkTime *time.Time
	if at != "" {
		parsed, err := time.Parse("15:04", at)
		if err != nil {
			return nil, invalidQuery("invalid time format, use HH:MM", err)
		}
		checkTime = &parsed
	}

	events, err := s.repo.ListRoomEvents(ctx, auditory, weekNumber, dayOfWeek, checkTime)
	if err != nil {
		return nil, unavailable(err)
	}
	return events, nil
}

func invalidQuery(message string, cause error) error {
	return scheduleservices.NewServiceError(http.StatusBadRequest, "EVENTS_INVALID_QUERY", message, cause)
}

func unavailable(cause error) error {
	return scheduleservices.NewServiceError(http.StatusServiceUnavailable, "EVENTS_UNAVAILABLE", "storage unavailable", cause)
}
