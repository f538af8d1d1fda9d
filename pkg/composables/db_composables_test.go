package composables_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/schedule-api/pkg/composables"
)

func TestUsePool_MissingPool(t *testing.T) {
	t.Parallel()

	_, err := composables.UsePool(context.Background())
	require.ErrorIs(t, err, composables.ErrNoPool)
}

func TestUseTx_FallsBackToPool(t *testing.T) {
	t.Parallel()

	// No tx and no pool in context: the fallback itself must fail.
	_, err := composables.UseTx(context.Background())
	require.ErrorIs(t, err, composables.ErrNoPool)

	pool := &pgxpool.Pool{}
	ctx := composables.WithPool(context.Background(), pool)
	querier, err := composables.UseTx(ctx)
	require.NoError(t, err)
	require.Same(t, pool, querier)
}

func TestUsePool_ReturnsBoundPool(t *testing.T) {
	t.Parallel()

	pool := &pgxpool.Pool{}
	ctx := composables.WithPool(context.Background(), pool)

	got, err := composables.UsePool(ctx)
	require.NoError(t, err)
	require.Same(t, pool, got)
}
