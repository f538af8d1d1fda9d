package persistence

import (
	"context"
	"errors"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/composables"
)

const employeeColumns = `id, url_id, first_name, last_name, middle_name, degree, rank, photo_link, calendar_id`

type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) GetByURLID(ctx context.Context, urlID string) (services.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return services.Employee{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT `+employeeColumns+`
FROM employees
WHERE url_id = $1
`, strings.TrimSpace(urlID))

	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return services.Employee{}, services.ErrEmployeeNotFound
		}
		return services.Employee{}, gerrors.Wrap(err, "get employee by url id")
	}
	return emp, nil
}

// Search matches on the space-joined full name: a simple-dictionary
// full-text match OR a case-insensitive substring match, so whole-word and
// partial-token queries both work. No ranking beyond the predicate.
func (r *EmployeeRepository) Search(ctx context.Context, query string, limit int) ([]services.Employee, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+employeeColumns+`
FROM employees
WHERE to_tsvector('simple', concat_ws(' ', last_name, first_name, middle_name))
		@@ plainto_tsquery('simple', $1)
	OR concat_ws(' ', last_name, first_name, middle_name) ILIKE '%' || $1 || '%'
LIMIT $2
`, query, limit)
	if err != nil {
		return nil, gerrors.Wrap(err, "search employees")
	}
	defer rows.Close()

	out := make([]services.Employee, 0, limit)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, gerrors.Wrap(err, "scan employee")
		}
		out = append(out, emp)
	}
	if rows.Err() != nil {
		return nil, gerrors.Wrap(rows.Err(), "search employees")
	}
	return out, nil
}

func scanEmployee(row pgx.Row) (services.Employee, error) {
	var e services.Employee
	if err := row.Scan(
		&e.ID,
		&e.URLID,
		&e.FirstName,
		&e.LastName,
		&e.MiddleName,
		&e.Degree,
		&e.Rank,
		&e.PhotoLink,
		&e.CalendarID,
	); err != nil {
		return services.Employee{}, err
	}
	return e, nil
}
