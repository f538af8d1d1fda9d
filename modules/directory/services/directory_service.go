package services

import (
	"context"
	"net/http"
	"strings"

	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
)

type Faculty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

type Department struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Abbr  string `json:"abbr"`
	URLID string `json:"url_id"`
}

type Speciality struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Abbr          string `json:"abbr"`
	Code          string `json:"code"`
	EducationForm string `json:"education_form"`
	FacultyID     int64  `json:"faculty_id"`
}

type Group struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Course           *int32 `json:"course,omitempty"`
	EducationDegree  int32  `json:"education_degree"`
	NumberOfStudents *int32 `json:"number_of_students,omitempty"`
	SpecialityID     int64  `json:"specialty_id"`
}

type DirectoryRepository interface {
	ListFaculties(ctx context.Context) ([]Faculty, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	ListSpecialities(ctx context.Context, facultyID *int64) ([]Speciality, error)
	// ListGroups returns only currently valid groups.
	ListGroups(ctx context.Context, specialityID *int64) ([]Group, error)
	ListEmployees(ctx context.Context, departmentID *int64) ([]scheduleservices.Employee, error)
}

// DirectoryService serves the university structure listings. These are plain
// unconditioned reads; the only classification needed is unavailable.
type DirectoryService struct {
	repo      DirectoryRepository
	employees scheduleservices.EmployeeRepository
}

func NewDirectoryService(repo DirectoryRepository, employees scheduleservices.EmployeeRepository) *DirectoryService {
	return &DirectoryService{repo: repo, employees: employees}
}

func (s *DirectoryService) Faculties(ctx context.Context) ([]Faculty, error) {
	rows, err := s.repo.ListFaculties(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

func (s *DirectoryService) Departments(ctx context.Context) ([]Department, error) {
	rows, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

func (s *DirectoryService) Specialities(ctx context.Context, facultyID *int64) ([]Speciality, error) {
	rows, err := s.repo.ListSpecialities(ctx, facultyID)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

func (s *DirectoryService) Groups(ctx context.Context, specialityID *int64) ([]Group, error) {
	rows, err := s.repo.ListGroups(ctx, specialityID)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

func (s *DirectoryService) Employees(ctx context.Context, departmentID *int64) ([]scheduleservices.Employee, error) {
	rows, err := s.repo.ListEmployees(ctx, departmentID)
	if err != nil {
		return nil, unavailable(err)
	}
	return rows, nil
}

func (s *DirectoryService) SearchEmployees(ctx context.Context, query string, limit int) ([]scheduleservices.Employee, error) {
	if strings.TrimSpace(query) == "" {
		return nil, scheduleservices.NewServiceError(http.StatusBadRequest, "DIRECTORY_INVALID_QUERY", "q is required", nil)
	}
	matches, err := s.employees.Search(ctx, query, limit)
	if err != nil {
		return nil, unavailable(err)
	}
	return matches, nil
}

func unavailable(cause error) error {
	return scheduleservices.NewServiceError(http.StatusServiceUnavailable, "DIRECTORY_UNAVAILABLE", "storage unavailable", cause)
}
