package persistence

import (
	"context"
	"strconv"
	"time"

	gerrors "github.com/go-faster/errors"

	"github.com/campusgrid/schedule-api/modules/rooms/services"
	"github.com/campusgrid/schedule-api/pkg/composables"
)

type RoomsRepository struct{}

func NewRoomsRepository() *RoomsRepository {
	return &RoomsRepository{}
}

func (r *RoomsRepository) ListFreeRooms(ctx context.Context, dayOfWeek string, weekNumber int, at time.Time, buildingNumber *int) ([]services.FreeRoom, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	// building_number is stored as text; NULL means no building filter.
	var building *string
	if buildingNumber != nil {
		formatted := strconv.Itoa(*buildingNumber)
		building = &formatted
	}

	rows, err := tx.Query(ctx, `
SELECT a.name, a.capacity, a.auditory_type
FROM auditories a
WHERE NOT EXISTS (
		SELECT 1
		FROM occupancy_index o
		WHERE o.auditory_id = a.id
			AND o.day_of_week = $1
			AND o.week_number = $2
			AND o.start_time <= $3::time
			AND o.end_time > $3::time
	)
	AND ($4::text IS NULL OR a.building_number = $4)
ORDER BY a.name
`, dayOfWeek, weekNumber, at.Format("15:04:05"), building)
	if err != nil {
		return nil, gerrors.Wrap(err, "list free rooms")
	}
	defer rows.Close()

	out := make([]services.FreeRoom, 0, 32)
	for rows.Next() {
		var room services.FreeRoom
		if err := rows.Scan(&room.Name, &room.Capacity, &room.RoomType); err != nil {
			return nil, gerrors.Wrap(err, "scan room")
		}
		out = append(out, room)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
