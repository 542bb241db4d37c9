package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/care-sa/booking/internal/entity"
)

// RegisterPushToken associates a device token with the calling user.
// Re-registering an existing token moves it to the new user.
func (s *Service) RegisterPushToken(ctx context.Context, token string) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	if token == "" {
		return fmt.Errorf("%w: empty push token", entity.ErrInvalidArgument)
	}

	err = s.repo.RegisterPushToken(ctx, entity.PushToken{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: user.ID,
		Token:  token,
		Active: true,
	})
	if err != nil {
		return fmt.Errorf("register push token: %w", err)
	}

	return nil
}

// ExpireStalePages deactivates payment pages older than the page TTL.
// Run periodically; a customer returning to a deactivated page has to
// request a fresh one.
func (s *Service) ExpireStalePages(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.pageTTL)

	n, err := s.repo.DeactivateStalePages(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("deactivate stale pages: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "stale payment pages deactivated", "count", n)
	}

	return nil
}
