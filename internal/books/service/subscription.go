package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

var ErrInvalidTier = errors.New("invalid subscription tier")

// SubscriptionService applies tier changes pushed by the billing provider.
// It only persists the new tier; no access decision is cached anywhere, so
// the change takes effect on the caller's next request.
type SubscriptionService struct {
	Store store.Store
}

// ApplyTierChange sets a user's subscription tier.
func (s *SubscriptionService) ApplyTierChange(ctx context.Context, userID string, tier domain.Tier) error {
	log := slogx.FromContext(ctx)

	if !tier.Valid() {
		log.Warn("tier change with unknown tier",
			slog.String("user_id", userID),
			slog.String("tier", string(tier)),
		)
		return ErrInvalidTier
	}

	if err := s.Store.Profiles().UpdateSubscriptionTier(ctx, userID, tier); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("tier change for unknown user", slog.String("user_id", userID))
			return ErrUserNotFound
		}
		log.Error("failed to update subscription tier", slog.Any("error", err))
		return err
	}

	log.Info("subscription tier updated",
		slog.String("user_id", userID),
		slog.String("tier", string(tier)),
	)
	return nil
}
