package cachekeys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/pkg/cachekeys"
)

func TestSchedule(t *testing.T) {
	t.Parallel()

	require.Equal(t, "schedule:group:221703", cachekeys.Schedule("group", "221703"))
	require.Equal(t, "schedule:employee:ivanov-i-i", cachekeys.Schedule("employee", "ivanov-i-i"))
}

func TestCurrentWeek(t *testing.T) {
	t.Parallel()

	require.Equal(t, "system:current_week", cachekeys.CurrentWeek)
}
