package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/modules/directory/services"
	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
)

type fakeDirectoryRepo struct {
	faculties []services.Faculty
	groups    []services.Group
	err       error

	specialityFilter *int64
}

func (f *fakeDirectoryRepo) ListFaculties(_ context.Context) ([]services.Faculty, error) {
	return f.faculties, f.err
}

func (f *fakeDirectoryRepo) ListDepartments(_ context.Context) ([]services.Department, error) {
	return nil, f.err
}

func (f *fakeDirectoryRepo) ListSpecialities(_ context.Context, _ *int64) ([]services.Speciality, error) {
	return nil, f.err
}

func (f *fakeDirectoryRepo) ListGroups(_ context.Context, specialityID *int64) ([]services.Group, error) {
	f.specialityFilter = specialityID
	return f.groups, f.err
}

func (f *fakeDirectoryRepo) ListEmployees(_ context.Context, _ *int64) ([]scheduleservices.Employee, error) {
	return nil, f.err
}

type fakeEmployeeSearch struct {
	matches []scheduleservices.Employee
	err     error

	query string
	limit int
}

func (f *fakeEmployeeSearch) GetByURLID(_ context.Context, _ string) (scheduleservices.Employee, error) {
	return scheduleservices.Employee{}, scheduleservices.ErrEmployeeNotFound
}

func (f *fakeEmployeeSearch) Search(_ context.Context, query string, limit int) ([]scheduleservices.Employee, error) {
	f.query = query
	f.limit = limit
	return f.matches, f.err
}

func requireServiceError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var se *scheduleservices.ServiceError
	require.ErrorAs(t, err, &se)
	require.Equal(t, status, se.HTTPStatus())
	require.Equal(t, code, se.ErrorCode())
}

func TestFaculties(t *testing.T) {
	t.Parallel()

	repo := &fakeDirectoryRepo{faculties: []services.Faculty{{ID: 1, Name: "Факультет информационных технологий", Abbr: "ФИТ"}}}
	svc := services.NewDirectoryService(repo, &fakeEmployeeSearch{})

	faculties, err := svc.Faculties(context.Background())
	require.NoError(t, err)
	require.Len(t, faculties, 1)
}

func TestGroups_PassesSpecialityFilter(t *testing.T) {
	t.Parallel()

	repo := &fakeDirectoryRepo{groups: []services.Group{{ID: 10, Name: "221703"}}}
	svc := services.NewDirectoryService(repo, &fakeEmployeeSearch{})

	specialityID := int64(7)
	groups, err := svc.Groups(context.Background(), &specialityID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.NotNil(t, repo.specialityFilter)
	require.Equal(t, int64(7), *repo.specialityFilter)
}

func TestGroups_StorageDown(t *testing.T) {
	t.Parallel()

	repo := &fakeDirectoryRepo{err: errors.New("connection refused")}
	svc := services.NewDirectoryService(repo, &fakeEmployeeSearch{})

	_, err := svc.Groups(context.Background(), nil)
	requireServiceError(t, err, http.StatusServiceUnavailable, "DIRECTORY_UNAVAILABLE")
}

func TestSearchEmployees(t *testing.T) {
	t.Parallel()

	search := &fakeEmployeeSearch{matches: []scheduleservices.Employee{{ID: 501, LastName: "Иванов"}}}
	svc := services.NewDirectoryService(&fakeDirectoryRepo{}, search)

	matches, err := svc.SearchEmployees(context.Background(), "Иванов", 20)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "Иванов", search.query)
	require.Equal(t, 20, search.limit)
}

func TestSearchEmployees_EmptyQuery(t *testing.T) {
	t.Parallel()

	svc := services.NewDirectoryService(&fakeDirectoryRepo{}, &fakeEmployeeSearch{})

	_, err := svc.SearchEmployees(context.Background(), "   ", 20)
	requireServiceError(t, err, http.StatusBadRequest, "DIRECTORY_INVALID_QUERY")
}
