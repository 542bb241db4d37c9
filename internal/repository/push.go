package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/care-sa/booking/internal/entity"
)

func (r *Repository) RegisterPushToken(ctx context.Context, t entity.PushToken) error {
	const q = `
	INSERT INTO push_tokens (id, user_id, token, active)
	VALUES ($1, $2, $3, true)
	ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, active = true
	`

	_, err := r.db.Exec(ctx, q, t.ID, t.UserID, t.Token)

	return err
}

func (r *Repository) ActivePushTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const q = `SELECT token FROM push_tokens WHERE user_id = $1 AND active`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tokens []string

	for rows.Next() {
		var token string

		err = rows.Scan(&token)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}

// DeactivatePushToken retires a token the gateway reported as no longer
// registered.
func (r *Repository) DeactivatePushToken(ctx context.Context, token string) error {
	const q = `UPDATE push_tokens SET active = false WHERE token = $1`

	result, err := r.db.Exec(ctx, q, token)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
