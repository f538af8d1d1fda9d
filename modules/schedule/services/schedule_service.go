package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusgrid/schedule-api/pkg/cachekeys"
	"github.com/campusgrid/schedule-api/pkg/metrics"
)

type EntityKind string

const (
	EntityKindGroup    EntityKind = "group"
	EntityKindEmployee EntityKind = "employee"
)

// Employee is the lightweight person projection returned by lookups and
// carried in ambiguous results. Never persisted by this service.
type Employee struct {
	ID         int64   `json:"id"`
	URLID      string  `json:"url_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	Degree     *string `json:"degree,omitempty"`
	Rank       *string `json:"rank,omitempty"`
	PhotoLink  *string `json:"photo_link,omitempty"`
	CalendarID *string `json:"calendar_id,omitempty"`
}

// FullName joins last/first/middle name, skipping absent parts.
func (e Employee) FullName() string {
	parts := []string{e.LastName, e.FirstName}
	if e.MiddleName != nil && *e.MiddleName != "" {
		parts = append(parts, *e.MiddleName)
	}
	return strings.Join(parts, " ")
}

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrStateNotFound    = errors.New("state entry not found")
)

type EmployeeRepository interface {
	// GetByURLID returns ErrEmployeeNotFound unless exactly one row matches.
	GetByURLID(ctx context.Context, urlID string) (Employee, error)
	// Search runs the combined full-text/substring match over concatenated
	// names. Empty queries return nil without touching storage; limit is
	// clamped to [1,100]. Result order is storage-determined.
	Search(ctx context.Context, query string, limit int) ([]Employee, error)
}

type ScheduleRepository interface {
	// Both return the current (valid_to IS NULL) document, tie-broken by the
	// most recent upstream update timestamp, or ErrScheduleNotFound.
	FindCurrentByGroup(ctx context.Context, groupName string) (json.RawMessage, error)
	FindCurrentByEmployee(ctx context.Context, employeeID int64) (json.RawMessage, error)
}

// CacheGateway never fails: transport errors and malformed payloads degrade
// to misses, writes are best-effort.
type CacheGateway interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type ScheduleService struct {
	schedules ScheduleRepository
	employees EmployeeRepository
	cache     CacheGateway
	cacheTTL  time.Duration
}

func NewScheduleService(
	schedules ScheduleRepository,
	employees EmployeeRepository,
	cache CacheGateway,
	cacheTTL time.Duration,
) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		employees: employees,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// GetSchedule returns the current schedule document for a group number or an
// employee identifier (numeric id, url id, or name fragment). Cache-aside:
// the cache is consulted before resolution under the raw identifier, which
// is already the final key for group numbers, url ids and numeric ids. On a
// miss the identifier is resolved and the cache is checked again under the
// canonical key before the storage fetch, so every alias of a person reads
// and writes the same cache entry.
func (s *ScheduleService) GetSchedule(ctx context.Context, kind EntityKind, identifier string) (json.RawMessage, error) {
	identifier = strings.TrimSpace(identifier)
	if kind != EntityKindGroup && kind != EntityKindEmployee {
		return nil, newNotFound(fmt.Sprintf("unknown entity kind %q", kind), nil)
	}
	if identifier == "" {
		return nil, newNotFound("empty identifier", nil)
	}

	key := cachekeys.Schedule(string(kind), identifier)
	if doc, ok := s.cachedDocument(ctx, key); ok {
		metrics.ScheduleRequests.WithLabelValues(string(kind), "cache_hit").Inc()
		return doc, nil
	}

	var (
		doc json.RawMessage
		err error
	)
	if kind == EntityKindGroup {
		doc, err = s.schedules.FindCurrentByGroup(ctx, identifier)
	} else {
		resolved, rerr := s.resolveEmployee(ctx, identifier)
		if rerr != nil {
			var se *ServiceError
			if errors.As(rerr, &se) {
				metrics.ScheduleRequests.WithLabelValues(string(kind), outcomeLabel(se)).Inc()
			}
			return nil, rerr
		}
		// Name fragments resolve to a different key than they were asked
		// under; a prior lookup through any alias may have filled it.
		if canonical := cachekeys.Schedule(string(kind), resolved.cacheID); canonical != key {
			key = canonical
			if doc, ok := s.cachedDocument(ctx, key); ok {
				metrics.ScheduleRequests.WithLabelValues(string(kind), "cache_hit").Inc()
				return doc, nil
			}
		}
		doc, err = s.schedules.FindCurrentByEmployee(ctx, resolved.id)
	}
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			metrics.ScheduleRequests.WithLabelValues(string(kind), "not_found").Inc()
			return nil, newNotFound("schedule not found", err)
		}
		metrics.ScheduleRequests.WithLabelValues(string(kind), "unavailable").Inc()
		return nil, newUnavailable(err)
	}

	s.cache.Set(ctx, key, doc, s.cacheTTL)
	metrics.ScheduleRequests.WithLabelValues(string(kind), "fetched").Inc()
	return doc, nil
}

func (s *ScheduleService) cachedDocument(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	// A non-deserializable payload counts as a miss, not a failure.
	if !json.Valid(raw) {
		return nil, false
	}
	return json.RawMessage(raw), true
}

func outcomeLabel(se *ServiceError) string {
	switch se.Code {
	case "SCHEDULE_AMBIGUOUS":
		return "ambiguous"
	case "SCHEDULE_UNAVAILABLE":
		return "unavailable"
	default:
		return "not_found"
	}
}
