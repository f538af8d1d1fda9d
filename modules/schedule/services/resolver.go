package services

import (
	"context"
	"errors"
	"strconv"
)

// Candidate limit for free-text disambiguation. Direct references (numeric
// ids, exact url ids) never pay for the ranked search.
const resolveCandidateLimit = 5

type resolvedEmployee struct {
	id int64
	// cacheID is the canonical identifier for the cache key: the url id when
	// known, otherwise the stringified numeric id.
	cacheID string
}

// resolveEmployee maps a raw identifier to the employee's numeric storage id
// and canonical cache identifier, in strict order: all-digit strings are
// taken as the numeric primary key without an existence check (the schedule
// fetch settles existence), then an exact url-id match, then fuzzy name
// search. Zero matches is a not-found, two or more is ambiguous.
func (s *ScheduleService) resolveEmployee(ctx context.Context, identifier string) (resolvedEmployee, error) {
	if isDigits(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err != nil {
			return resolvedEmployee{}, newNotFound("employee not found", err)
		}
		return resolvedEmployee{id: id, cacheID: identifier}, nil
	}

	emp, err := s.employees.GetByURLID(ctx, identifier)
	switch {
	case err == nil:
		return resolvedEmployee{id: emp.ID, cacheID: emp.URLID}, nil
	case !errors.Is(err, ErrEmployeeNotFound):
		return resolvedEmployee{}, newUnavailable(err)
	}

	matches, err := s.employees.Search(ctx, identifier, resolveCandidateLimit)
	if err != nil {
		return resolvedEmployee{}, newUnavailable(err)
	}

	switch len(matches) {
	case 0:
		return resolvedEmployee{}, newNotFound("employee not found", nil)
	case 1:
		m := matches[0]
		cacheID := m.URLID
		if cacheID == "" {
			cacheID = strconv.FormatInt(m.ID, 10)
		}
		return resolvedEmployee{id: m.ID, cacheID: cacheID}, nil
	default:
		return resolvedEmployee{}, newAmbiguous(matches)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
