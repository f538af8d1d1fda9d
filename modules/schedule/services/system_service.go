package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/campusgrid/schedule-api/pkg/cachekeys"
)

type SystemRepository interface {
	// GetStateValue returns ErrStateNotFound when the key is absent.
	GetStateValue(ctx context.Context, key string) (string, error)
}

// SystemService serves the current academic week under the same
// cache-aside discipline as schedules, just over a simpler domain.
type SystemService struct {
	repo     SystemRepository
	cache    CacheGateway
	cacheTTL time.Duration
}

func NewSystemService(repo SystemRepository, cache CacheGateway, cacheTTL time.Duration) *SystemService {
	return &SystemService{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *SystemService) GetCurrentWeek(ctx context.Context) (int, error) {
	if raw, ok := s.cache.Get(ctx, cachekeys.CurrentWeek); ok {
		if week, err := strconv.Atoi(string(raw)); err == nil {
			return week, nil
		}
		// malformed cached value: fall through to storage
	}

	value, err := s.repo.GetStateValue(ctx, "current_week")
	if err != nil {
		if errors.Is(err, ErrStateNotFound) {
			return 0, newNotFound("current week is not known", err)
		}
		return 0, newUnavailable(err)
	}

	week, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, NewServiceError(http.StatusServiceUnavailable, "SCHEDULE_UNAVAILABLE", "malformed current week state", err)
	}

	s.cache.Set(ctx, cachekeys.CurrentWeek, []byte(strconv.Itoa(week)), s.cacheTTL)
	return week, nil
}
