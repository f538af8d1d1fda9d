package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/campusgrid/schedule-api/modules/directory/services"
	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/composables"
)

type DirectoryRepository struct{}

func NewDirectoryRepository() *DirectoryRepository {
	return &DirectoryRepository{}
}

func (r *DirectoryRepository) ListFaculties(ctx context.Context) ([]services.Faculty, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, abbr
FROM faculties
ORDER BY id
`)
	if err != nil {
		return nil, gerrors.Wrap(err, "list faculties")
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (services.Faculty, error) {
		var f services.Faculty
		err := rows.Scan(&f.ID, &f.Name, &f.Abbr)
		return f, err
	})
}

func (r *DirectoryRepository) ListDepartments(ctx context.Context) ([]services.Department, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, abbr, url_id
FROM departments
ORDER BY id
`)
	if err != nil {
		return nil, gerrors.Wrap(err, "list departments")
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (services.Department, error) {
		var d services.Department
		err := rows.Scan(&d.ID, &d.Name, &d.Abbr, &d.URLID)
		return d, err
	})
}

func (r *DirectoryRepository) ListSpecialities(ctx context.Context, facultyID *int64) ([]services.Speciality, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, abbr, code, education_form, faculty_id
FROM specialities
WHERE $1::bigint IS NULL OR faculty_id = $1
ORDER BY id
`, facultyID)
	if err != nil {
		return nil, gerrors.Wrap(err, "list specialities")
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (services.Speciality, error) {
		var sp services.Speciality
		err := rows.Scan(&sp.ID, &sp.Name, &sp.Abbr, &sp.Code, &sp.EducationForm, &sp.FacultyID)
		return sp, err
	})
}

func (r *DirectoryRepository) ListGroups(ctx context.Context, specialityID *int64) ([]services.Group, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, name, course, education_degree, number_of_students, specialty_id
FROM student_groups
WHERE valid_to IS NULL
	AND ($1::bigint IS NULL OR specialty_id = $1)
ORDER BY id
`, specialityID)
	if err != nil {
		return nil, gerrors.Wrap(err, "list groups")
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (services.Group, error) {
		var g services.Group
		err := rows.Scan(&g.ID, &g.Name, &g.Course, &g.EducationDegree, &g.NumberOfStudents, &g.SpecialityID)
		return g, err
	})
}

func (r *DirectoryRepository) ListEmployees(ctx context.Context, departmentID *int64) ([]scheduleservices.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT e.id, e.url_id, e.first_name, e.last_name, e.middle_name,
	e.degree, e.rank, e.photo_link, e.calendar_id
FROM employees e
WHERE $1::bigint IS NULL
	OR EXISTS (
		SELECT 1
		FROM departments_employees de
		WHERE de.employee_id = e.id AND de.department_id = $1
	)
ORDER BY e.id
`, departmentID)
	if err != nil {
		return nil, gerrors.Wrap(err, "list employees")
	}
	defer rows.Close()

	return collect(rows, func(rows pgx.Rows) (scheduleservices.Employee, error) {
		var e scheduleservices.Employee
		err := rows.Scan(&e.ID, &e.URLID, &e.FirstName, &e.LastName, &e.MiddleName,
			&e.Degree, &e.Rank, &e.PhotoLink, &e.CalendarID)
		return e, err
	})
}

func collect[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	out := make([]T, 0, 32)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, gerrors.Wrap(err, "scan row")
		}
		out = append(out, item)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
