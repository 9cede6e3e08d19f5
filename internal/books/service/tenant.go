package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/pkg/idx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

var (
	ErrInvalidTenantRequest = errors.New("invalid tenant request")
	ErrBusinessExists       = errors.New("user already owns a business")
	ErrBusinessNotFound     = errors.New("business not found")
)

type TenantService struct {
	Store store.Store
}

// CreateBusiness completes onboarding: the caller becomes the owner of a new
// business and their owned business immediately takes precedence as their
// tenant scope. A user owns at most one business.
func (s *TenantService) CreateBusiness(
	ctx context.Context,
	ownerID string,
	name, legalName, contactEmail, currency string,
) (domain.Business, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Business{}, ErrInvalidTenantRequest
	}
	if currency == "" {
		currency = "AUD"
	}

	// 2. Reject a second business for the same owner
	_, err := s.Store.Businesses().GetBusinessByOwner(ctx, ownerID)
	if err == nil {
		log.Warn("business creation attempted by existing owner",
			slog.String("owner_id", ownerID),
		)
		return domain.Business{}, ErrBusinessExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check existing business", slog.Any("error", err))
		return domain.Business{}, err
	}

	// 3. Create the business and mark onboarding done atomically
	now := time.Now().UTC()
	biz := domain.Business{
		ID:           idx.New().String(),
		OwnerID:      ownerID,
		Name:         name,
		LegalName:    legalName,
		ContactEmail: contactEmail,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Businesses().CreateBusiness(ctx, biz); err != nil {
			return err
		}
		return tx.Profiles().SetOnboardingCompleted(ctx, ownerID)
	})
	if err != nil {
		log.Error("failed to create business", slog.Any("error", err))
		return domain.Business{}, err
	}

	log.Info("business created",
		slog.String("business_id", biz.ID),
		slog.String("owner_id", ownerID),
	)
	return biz, nil
}

// SwitchTenant re-binds the caller's membership tenant to another business.
// The target must exist; on a missing target the previous binding is left
// untouched so the caller keeps whatever access they had.
func (s *TenantService) SwitchTenant(ctx context.Context, userID, businessID string) (domain.Business, error) {
	log := slogx.FromContext(ctx)

	if businessID == "" {
		return domain.Business{}, ErrInvalidTenantRequest
	}

	// 1. The target must exist before anything is written.
	biz, err := s.Store.Businesses().GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("tenant switch to unknown business",
				slog.String("user_id", userID),
				slog.String("business_id", businessID),
			)
			return domain.Business{}, ErrBusinessNotFound
		}
		log.Error("failed to fetch business", slog.Any("error", err))
		return domain.Business{}, err
	}

	// 2. Re-bind the membership.
	if err := s.Store.Profiles().UpdateBelongsToBusiness(ctx, userID, &businessID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Business{}, ErrUserNotFound
		}
		log.Error("failed to update tenant binding", slog.Any("error", err))
		return domain.Business{}, err
	}

	log.Info("tenant switched",
		slog.String("user_id", userID),
		slog.String("business_id", businessID),
	)
	return biz, nil
}

// GetBusiness fetches one business by id.
func (s *TenantService) GetBusiness(ctx context.Context, businessID string) (domain.Business, error) {
	biz, err := s.Store.Businesses().GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Business{}, ErrBusinessNotFound
		}
		return domain.Business{}, err
	}
	return biz, nil
}
