package tools

import (
	"context"
	"encoding/json"
	"net/http"

	directoryservices "github.com/campusgrid/schedule-api/modules/directory/services"
	eventservices "github.com/campusgrid/schedule-api/modules/events/services"
	roomservices "github.com/campusgrid/schedule-api/modules/rooms/services"
	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/toolcall"
)

// NewRegistry wires every read operation of the API into the tool-call
// surface. Handlers translate loose JSON arguments into the same service
// calls the REST controllers make, so both surfaces share one behavior.
func NewRegistry(
	schedules *scheduleservices.ScheduleService,
	system *scheduleservices.SystemService,
	directory *directoryservices.DirectoryService,
	rooms *roomservices.RoomsService,
	events *eventservices.EventService,
) (*toolcall.Registry, error) {
	return toolcall.NewRegistry(
		toolcall.Tool{
			Name:        "schedule_get",
			Description: "Get the current schedule document for a group number or an employee (id, url id or name fragment).",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"entity_type": {"type": "string", "enum": ["group", "employee"]},
					"identifier": {"type": "string"}
				},
				"required": ["entity_type", "identifier"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					EntityType string `json:"entity_type"`
					Identifier string `json:"identifier"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return schedules.GetSchedule(ctx, scheduleservices.EntityKind(args.EntityType), args.Identifier)
			},
		},
		toolcall.Tool{
			Name:        "current_week_get",
			Description: "Get the current academic week number (1-4).",
			InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
			Handler: func(ctx context.Context, _ json.RawMessage) (any, error) {
				week, err := system.GetCurrentWeek(ctx)
				if err != nil {
					return nil, err
				}
				return struct {
					WeekNumber int `json:"week_number"`
				}{WeekNumber: week}, nil
			},
		},
		toolcall.Tool{
			Name:        "employees_search",
			Description: "Search employees by name fragment.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"q": {"type": "string"},
					"limit": {"type": "integer", "minimum": 1, "maximum": 100}
				},
				"required": ["q"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					Query string `json:"q"`
					Limit int    `json:"limit"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				if args.Limit == 0 {
					args.Limit = 20
				}
				return directory.SearchEmployees(ctx, args.Query, args.Limit)
			},
		},
		toolcall.Tool{
			Name:        "events_search",
			Description: "Search one entity's events by subject, optionally within a week.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"entity_name": {"type": "string"},
					"q": {"type": "string"},
					"week_number": {"type": "integer", "minimum": 1, "maximum": 4}
				},
				"required": ["entity_name", "q"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					EntityName string `json:"entity_name"`
					Query      string `json:"q"`
					WeekNumber *int   `json:"week_number"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return events.SearchEvents(ctx, args.EntityName, args.Query, args.WeekNumber)
			},
		},
		toolcall.Tool{
			Name:        "events_global_search",
			Description: "Search every entity's events by subject, optionally within a week.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"q": {"type": "string"},
					"week_number": {"type": "integer", "minimum": 1, "maximum": 4},
					"limit": {"type": "integer", "minimum": 1, "maximum": 100}
				},
				"required": ["q"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					Query      string `json:"q"`
					WeekNumber *int   `json:"week_number"`
					Limit      int    `json:"limit"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return events.GlobalSearchEvents(ctx, args.Query, args.WeekNumber, args.Limit)
			},
		},
		toolcall.Tool{
			Name:        "auditories_occupancy",
			Description: "List the events occupying an auditory for a day of week, optionally at one time.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"auditory": {"type": "string"},
					"week_number": {"type": "integer", "minimum": 1, "maximum": 4},
					"day_of_week": {"type": "integer", "minimum": 1, "maximum": 7},
					"time": {"type": "string", "description": "HH:MM"}
				},
				"required": ["auditory", "week_number", "day_of_week"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					Auditory   string `json:"auditory"`
					WeekNumber int    `json:"week_number"`
					DayOfWeek  int    `json:"day_of_week"`
					Time       string `json:"time"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return events.RoomEvents(ctx, args.Auditory, args.WeekNumber, args.DayOfWeek, args.Time)
			},
		},
		toolcall.Tool{
			Name:        "faculties_list",
			Description: "List university faculties.",
			InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
			Handler: func(ctx context.Context, _ json.RawMessage) (any, error) {
				return directory.Faculties(ctx)
			},
		},
		toolcall.Tool{
			Name:        "departments_list",
			Description: "List university departments.",
			InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
			Handler: func(ctx context.Context, _ json.RawMessage) (any, error) {
				return directory.Departments(ctx)
			},
		},
		toolcall.Tool{
			Name:        "specialities_list",
			Description: "List specialities, optionally for one faculty.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"faculty_id": {"type": "integer"}
				}
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					FacultyID *int64 `json:"faculty_id"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return directory.Specialities(ctx, args.FacultyID)
			},
		},
		toolcall.Tool{
			Name:        "groups_list",
			Description: "List currently valid student groups, optionally for one speciality.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"speciality_id": {"type": "integer"}
				}
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					SpecialityID *int64 `json:"speciality_id"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return directory.Groups(ctx, args.SpecialityID)
			},
		},
		toolcall.Tool{
			Name:        "auditories_free",
			Description: "List free auditories for a day of week, week number and time.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"day_of_week": {"type": "string"},
					"week_number": {"type": "integer", "minimum": 1, "maximum": 4},
					"time": {"type": "string", "description": "HH:MM"},
					"building_number": {"type": "integer"}
				},
				"required": ["day_of_week", "week_number", "time"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					DayOfWeek      string `json:"day_of_week"`
					WeekNumber     int    `json:"week_number"`
					Time           string `json:"time"`
					BuildingNumber *int   `json:"building_number"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return rooms.FreeRooms(ctx, args.DayOfWeek, args.WeekNumber, args.Time, args.BuildingNumber)
			},
		},
		toolcall.Tool{
			Name:        "events_day",
			Description: "List the events of one entity for a given week number and day of week.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"entity_name": {"type": "string"},
					"week_number": {"type": "integer", "minimum": 1, "maximum": 4},
					"day_of_week": {"type": "integer", "minimum": 1, "maximum": 7}
				},
				"required": ["entity_name", "week_number", "day_of_week"]
			}`),
			Handler: func(ctx context.Context, arguments json.RawMessage) (any, error) {
				var args struct {
					EntityName string `json:"entity_name"`
					WeekNumber int    `json:"week_number"`
					DayOfWeek  int    `json:"day_of_week"`
				}
				if err := json.Unmarshal(arguments, &args); err != nil {
					return nil, invalidArgs(err)
				}
				return events.DayEvents(ctx, args.EntityName, args.WeekNumber, args.DayOfWeek)
			},
		},
	)
}

func invalidArgs(cause error) error {
	return scheduleservices.NewServiceError(http.StatusBadRequest, "TOOLS_INVALID_ARGS", "arguments do not match the tool schema", cause)
}
