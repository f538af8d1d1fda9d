package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/composables"
)

type SystemRepository struct{}

func NewSystemRepository() *SystemRepository {
	return &SystemRepository{}
}

func (r *SystemRepository) GetStateValue(ctx context.Context, key string) (string, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return "", err
	}

	var value string
	if err := tx.QueryRow(ctx, `
SELECT value
FROM system_state
WHERE key = $1
`, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", services.ErrStateNotFound
		}
		return "", gerrors.Wrap(err, "get state value")
	}
	return value, nil
}
