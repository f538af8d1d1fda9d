package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/modules/events/services"
	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
)

type fakeEventRepo struct {
	events []services.Event
	err    error

	roomAt      *time.Time
	globalLimit int
}

func (f *fakeEventRepo) SearchEvents(_ context.Context, _, _ string, _ *int) ([]services.Event, error) {
	return f.events, f.err
}

func (f *fakeEventRepo) SearchAllEvents(_ context.Context, _ string, _ *int, limit int) ([]services.Event, error) {
	f.globalLimit = limit
	return f.events, f.err
}

func (f *fakeEventRepo) ListDayEvents(_ context.Context, _ string, _, _ int) ([]services.Event, error) {
	return f.events, f.err
}

func (f *fakeEventRepo) ListRoomEvents(_ context.Context, _ string, _, _ int, at *time.Time) ([]services.Event, error) {
	f.roomAt = at
	return f.events, f.err
}

func requireServiceError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var se *scheduleservices.ServiceError
	require.ErrorAs(t, err, &se)
	require.Equal(t, status, se.HTTPStatus())
	require.Equal(t, code, se.ErrorCode())
}

func TestSearchEvents(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{events: []services.Event{{Subject: "МедБЗн"}}}
	svc := services.NewEventService(repo)

	events, err := svc.SearchEvents(context.Background(), "221703", "МедБЗн", nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestSearchEvents_RequiresEntityAndQuery(t *testing.T) {
	t.Parallel()

	svc := services.NewEventService(&fakeEventRepo{})

	_, err := svc.SearchEvents(context.Background(), " ", "МедБЗн", nil)
	requireServiceError(t, err, http.StatusBadRequest, "EVENTS_INVALID_QUERY")

	_, err = svc.SearchEvents(context.Background(), "221703", " ", nil)
	requireServiceError(t, err, http.StatusBadRequest, "EVENTS_INVALID_QUERY")
}

func TestGlobalSearchEvents(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{events: []services.Event{{Subject: "МедБЗн"}, {Subject: "МедБЗн", EntityName: "221704"}}}
	svc := services.NewEventService(repo)

	events, err := svc.GlobalSearchEvents(context.Background(), "МедБЗн", nil, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, 10, repo.globalLimit)
}

func TestGlobalSearchEvents_RequiresQuery(t *testing.T) {
	t.Parallel()

	svc := services.NewEventService(&fakeEventRepo{})

	_, err := svc.GlobalSearchEvents(context.Background(), "  ", nil, 10)
	requireServiceError(t, err, http.StatusBadRequest, "EVENTS_INVALID_QUERY")
}

func TestGlobalSearchEvents_LimitClamped(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := services.NewEventService(repo)

	_, err := svc.GlobalSearchEvents(context.Background(), "МедБЗн", nil, 0)
	require.NoError(t, err)
	require.Equal(t, 50, repo.globalLimit)

	_, err = svc.GlobalSearchEvents(context.Background(), "МедБЗн", nil, 500)
	require.NoError(t, err)
	require.Equal(t, 100, repo.globalLimit)
}

func TestDayEvents_StorageDown(t *testing.T) {
	t.Parallel()

	svc := services.NewEventService(&fakeEventRepo{err: errors.New("connection refused")})

	_, err := svc.DayEvents(context.Background(), "221703", 2, 1)
	requireServiceError(t, err, http.StatusServiceUnavailable, "EVENTS_UNAVAILABLE")
}

func TestRoomEvents_TimeIsOptional(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := services.NewEventService(repo)

	_, err := svc.RoomEvents(context.Background(), "601-5", 2, 1, "")
	require.NoError(t, err)
	require.Nil(t, repo.roomAt)

	_, err = svc.RoomEvents(context.Background(), "601-5", 2, 1, "10:35")
	require.NoError(t, err)
	require.NotNil(t, repo.roomAt)
	require.Equal(t, "10:35", repo.roomAt.Format("15:04"))
}

func TestRoomEvents_InvalidTime(t *testing.T) {
	t.Parallel()

	svc := services.NewEventService(&fakeEventRepo{})

	_, err := svc.RoomEvents(context.Background(), "601-5", 2, 1, "half past ten")
	requireServiceError(t, err, http.StatusBadRequest, "EVENTS_INVALID_QUERY")
}
