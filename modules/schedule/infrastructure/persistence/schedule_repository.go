package persistence

import (
	"context"
	"encoding/json"
	"time"

	gerrors "github.com/go-faster/errors"

	"github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/composables"
)

// ScheduleRepository reads versioned schedule documents. Each entity may have
// many historical rows; the current one has valid_to unset. More than one
// open row is an upstream anomaly, tolerated by taking the most recently
// updated (NULL timestamps lose to any timestamp).
type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

// Group schedules are addressed by group name (the group number string),
// employee schedules by the numeric employee id.
func (r *ScheduleRepository) FindCurrentByGroup(ctx context.Context, groupName string) (json.RawMessage, error) {
	return r.findCurrent(ctx, `
SELECT data, api_last_update_ts
FROM schedule_json_storage
WHERE entity_type = 'group'
	AND group_name = $1
	AND valid_to IS NULL
`, groupName)
}

func (r *ScheduleRepository) FindCurrentByEmployee(ctx context.Context, employeeID int64) (json.RawMessage, error) {
	return r.findCurrent(ctx, `
SELECT data, api_last_update_ts
FROM schedule_json_storage
WHERE entity_type = 'employee'
	AND employee_id = $1
	AND valid_to IS NULL
`, employeeID)
}

type openRow struct {
	data         []byte
	lastUpdateTS *time.Time
}

func (r *ScheduleRepository) findCurrent(ctx context.Context, query string, arg any) (json.RawMessage, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, arg)
	if err != nil {
		return nil, gerrors.Wrap(err, "find current schedule")
	}
	defer rows.Close()

	open := make([]openRow, 0, 1)
	for rows.Next() {
		var row openRow
		if err := rows.Scan(&row.data, &row.lastUpdateTS); err != nil {
			return nil, gerrors.Wrap(err, "scan schedule row")
		}
		open = append(open, row)
	}
	if rows.Err() != nil {
		return nil, gerrors.Wrap(rows.Err(), "find current schedule")
	}

	current, ok := pickCurrent(open)
	if !ok {
		return nil, services.ErrScheduleNotFound
	}
	return json.RawMessage(current.data), nil
}

// pickCurrent resolves the multi-open-row anomaly deterministically: the row
// with the newest upstream update timestamp wins, rows without a timestamp
// lose to any timestamped row, and the first row seen wins exact ties.
func pickCurrent(open []openRow) (openRow, bool) {
	if len(open) == 0 {
		return openRow{}, false
	}
	best := open[0]
	for _, row := range open[1:] {
		if newerThan(row.lastUpdateTS, best.lastUpdateTS) {
			best = row
		}
	}
	return best, true
}

func newerThan(candidate, best *time.Time) bool {
	if candidate == nil {
		return false
	}
	if best == nil {
		return true
	}
	return candidate.After(*best)
}
