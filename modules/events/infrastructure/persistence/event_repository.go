package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/campusgrid/schedule-api/modules/events/services"
	"github.com/campusgrid/schedule-api/pkg/composables"
)

// Events join against employees so that events owned by an employee (entity
// name = url id) come back with a readable display name.
const eventColumns = `
e.subject, e.subject_full, e.week_numbers, e.day_of_week, e.start_time, e.end_time,
e.auditories, e.entity_name, e.entity_type, e.related_employees, e.subgroup,
emp.last_name, emp.first_name, emp.middle_name`

const eventJoin = `
FROM schedule_events e
LEFT JOIN employees emp
	ON e.entity_type = 'employee'
	AND e.entity_name = emp.url_id`

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) SearchEvents(ctx context.Context, entityName, query string, weekNumber *int) ([]services.Event, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+eventColumns+eventJoin+`
WHERE e.entity_name = $1
	AND (e.subject ILIKE '%' || $2 || '%' OR e.subject_full ILIKE '%' || $2 || '%')
	AND ($3::int IS NULL OR $3 = ANY(e.week_numbers))
ORDER BY e.day_of_week, e.start_time
`, entityName, query, weekNumber)
	if err != nil {
		return nil, gerrors.Wrap(err, "search events")
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) SearchAllEvents(ctx context.Context, query string, weekNumber *int, limit int) ([]services.Event, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+eventColumns+eventJoin+`
WHERE (e.subject ILIKE '%' || $1 || '%' OR e.subject_full ILIKE '%' || $1 || '%')
	AND ($2::int IS NULL OR $2 = ANY(e.week_numbers))
ORDER BY e.entity_name, e.day_of_week, e.start_time
LIMIT $3
`, query, weekNumber, limit)
	if err != nil {
		return nil, gerrors.Wrap(err, "search all events")
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListDayEvents(ctx context.Context, entityName string, weekNumber, dayOfWeek int) ([]services.Event, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+eventColumns+eventJoin+`
WHERE e.entity_name = $1
	AND $2 = ANY(e.week_numbers)
	AND e.day_of_week = $3
ORDER BY e.start_time
`, entityName, weekNumber, dayOfWeek)
	if err != nil {
		return nil, gerrors.Wrap(err, "list day events")
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListRoomEvents(ctx context.Context, auditory string, weekNumber, dayOfWeek int, at *time.Time) ([]services.Event, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var atValue *string
	if at != nil {
		formatted := at.Format("15:04:05")
		atValue = &formatted
	}

	rows, err := tx.Query(ctx, `
SELECT `+eventColumns+eventJoin+`
WHERE $1 = ANY(e.auditories)
	AND $2 = ANY(e.week_numbers)
	AND e.day_of_week = $3
	AND ($4::time IS NULL OR (e.start_time <= $4::time AND e.end_time > $4::time))
ORDER BY e.start_time
`, auditory, weekNumber, dayOfWeek, atValue)
	if err != nil {
		return nil, gerrors.Wrap(err, "list room events")
	}
	defer rows.Close()

	return collectEvents(rows)
}

// relatedEmployee mirrors the upstream JSON embedded in schedule rows.
type relatedEmployee struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	URLID      string `json:"urlId"`
}

func collectEvents(rows pgx.Rows) ([]services.Event, error) {
	out := make([]services.Event, 0, 16)
	for rows.Next() {
		var (
			event      services.Event
			startTime  pgtype.Time
			endTime    pgtype.Time
			related    []byte
			lastName   *string
			firstName  *string
			middleName *string
		)
		if err := rows.Scan(
			&event.Subject,
			&event.SubjectFull,
			&event.WeekNumbers,
			&event.DayOfWeek,
			&startTime,
			&endTime,
			&event.Auditories,
			&event.EntityName,
			&event.EntityType,
			&related,
			&event.Subgroup,
			&lastName,
			&firstName,
			&middleName,
		); err != nil {
			return nil, gerrors.Wrap(err, "scan event")
		}

		event.StartTime = formatTime(startTime)
		event.EndTime = formatTime(endTime)
		event.EntityDisplayName = displayName(event.EntityName, lastName, firstName, middleName)
		event.TeachersDisplayNames = teacherNames(related)
		out = append(out, event)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func formatTime(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	total := t.Microseconds / 60_000_000
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func displayName(entityName string, lastName, firstName, middleName *string) string {
	if lastName == nil || *lastName == "" {
		return entityName
	}
	parts := []string{*lastName}
	for _, p := range []*string{firstName, middleName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " ")
}

func teacherNames(related []byte) []string {
	if len(related) == 0 {
		return nil
	}
	var teachers []relatedEmployee
	if err := json.Unmarshal(related, &teachers); err != nil {
		return nil
	}

	names := make([]string, 0, len(teachers))
	for _, t := range teachers {
		parts := make([]string, 0, 3)
		for _, p := range []string{t.LastName, t.FirstName, t.MiddleName} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		switch {
		case len(parts) > 0:
			names = append(names, strings.Join(parts, " "))
		case t.URLID != "":
			names = append(names, t.URLID)
		}
	}
	return names
}
