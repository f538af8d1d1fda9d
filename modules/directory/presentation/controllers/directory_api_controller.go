package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/campusgrid/schedule-api/modules/directory/services"
	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

const defaultSearchLimit = 20

type DirectoryAPIController struct {
	directory *services.DirectoryService
}

func NewDirectoryAPIController(directory *services.DirectoryService) *DirectoryAPIController {
	return &DirectoryAPIController{directory: directory}
}

func (c *DirectoryAPIController) Key() string {
	return "/structure"
}

func (c *DirectoryAPIController) Register(r *mux.Router) {
	r.HandleFunc("/structure/faculties", c.GetFaculties).Methods(http.MethodGet)
	r.HandleFunc("/structure/departments", c.GetDepartments).Methods(http.MethodGet)
	r.HandleFunc("/structure/specialities", c.GetSpecialities).Methods(http.MethodGet)
	r.HandleFunc("/structure/groups", c.GetGroups).Methods(http.MethodGet)
	r.HandleFunc("/structure/employees", c.GetEmployees).Methods(http.MethodGet)
	r.HandleFunc("/employees/search", c.SearchEmployees).Methods(http.MethodGet)
}

func (c *DirectoryAPIController) GetFaculties(w http.ResponseWriter, r *http.Request) {
	faculties, err := c.directory.Faculties(r.Context())
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, faculties)
}

func (c *DirectoryAPIController) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := c.directory.Departments(r.Context())
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, departments)
}

func (c *DirectoryAPIController) GetSpecialities(w http.ResponseWriter, r *http.Request) {
	facultyID, ok := optionalInt64(w, r, "faculty_id")
	if !ok {
		return
	}
	specialities, err := c.directory.Specialities(r.Context(), facultyID)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, specialities)
}

func (c *DirectoryAPIController) GetGroups(w http.ResponseWriter, r *http.Request) {
	specialityID, ok := optionalInt64(w, r, "specialty_id")
	if !ok {
		return
	}
	groups, err := c.directory.Groups(r.Context(), specialityID)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, groups)
}

func (c *DirectoryAPIController) GetEmployees(w http.ResponseWriter, r *http.Request) {
	departmentID, ok := optionalInt64(w, r, "department_id")
	if !ok {
		return
	}
	employees, err := c.directory.Employees(r.Context(), departmentID)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, employees)
}

func (c *DirectoryAPIController) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "DIRECTORY_INVALID_QUERY", "limit must be an integer", nil)
			return
		}
		limit = parsed
	}

	matches, err := c.directory.SearchEmployees(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		_ = httpapi.WriteServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, matches)
}

// optionalInt64 parses an optional integer query parameter, writing a 400 on
// malformed input. The second return value reports whether to proceed.
func optionalInt64(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "DIRECTORY_INVALID_QUERY", name+" must be an integer", nil)
		return nil, false
	}
	return &value, true
}
