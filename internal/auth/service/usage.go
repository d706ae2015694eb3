package service

import (
	"context"
	"log/slog"

	"github.com/talentsift/talentsift/internal/auth/domain"
	"github.com/talentsift/talentsift/internal/auth/store"
	"github.com/talentsift/talentsift/pkg/slogx"
)

// UsageService reads and advances the per-user usage counters. All arithmetic
// happens inside the store so concurrent increments never lose updates.
type UsageService struct {
	Store store.Store
}

// Snapshot returns the caller's counters together with the configured limits
// and remaining headroom.
func (s *UsageService) Snapshot(ctx context.Context, userID string) (domain.Usage, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Usage{}, err
	}
	return user.Usage.Snapshot(), nil
}

// Increment advances one counter for the account identified by email and
// returns the updated usage snapshot. Capped counters fail with
// store.ErrLimitReached when the increment would push past the ceiling; the
// counter is left untouched in that case.
func (s *UsageService) Increment(ctx context.Context, email string, counter domain.Counter, amount int64) (domain.Usage, error) {
	if amount <= 0 {
		amount = 1
	}

	email = domain.NormalizeEmail(email)

	user, err := s.Store.Users().IncrementCounter(ctx, email, counter, amount)
	if err != nil {
		return domain.Usage{}, err
	}

	slogx.FromContext(ctx).Debug("usage counter incremented",
		slog.String("user_id", user.ID),
		slog.String("counter", string(counter)),
		slog.Int64("amount", amount),
	)
	return user.Usage.Snapshot(), nil
}
