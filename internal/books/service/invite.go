package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/pkg/cryptox"
	"github.com/eazybooks/eazybooks/pkg/idx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrNoOwnedBusiness      = errors.New("user does not own a business")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteExpired        = errors.New("invite has expired")
)

type InviteService struct {
	Store store.Store
}

// MintInvite creates a single-use employee invite for the caller's owned
// business and returns the raw token. Only the token fingerprint is stored.
func (s *InviteService) MintInvite(
	ctx context.Context,
	ownerID string,
	email string,
	role string,
	employeeRole string,
	expiresAt time.Time,
) (string, domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || role == "" {
		return "", domain.Invite{}, ErrInvalidInviteRequest
	}

	// 2. Default and validate expiry
	now := time.Now().UTC()
	if expiresAt.IsZero() {
		expiresAt = now.Add(domain.DefaultInviteTTL)
	}
	if !expiresAt.After(now) {
		log.Warn("invite minted with past expiry", slog.Time("expires_at", expiresAt))
		return "", domain.Invite{}, ErrInvalidInviteRequest
	}

	// 3. Invites are always scoped to the business the caller owns.
	biz, err := s.Store.Businesses().GetBusinessByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite minted by a non-owner", slog.String("user_id", ownerID))
			return "", domain.Invite{}, ErrNoOwnedBusiness
		}
		log.Error("failed to fetch owned business", slog.Any("error", err))
		return "", domain.Invite{}, err
	}

	// 4. Generate random token and fingerprint it.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return "", domain.Invite{}, err
	}

	invite := domain.Invite{
		ID:           idx.New().String(),
		TokenHash:    cryptox.FingerprintToken(token),
		Email:        email,
		BusinessID:   biz.ID,
		InvitedBy:    ownerID,
		Role:         role,
		EmployeeRole: employeeRole,
		ExpiresAt:    expiresAt,
		CreatedAt:    now,
	}

	if err := s.Store.Invites().CreateInvite(ctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return "", domain.Invite{}, err
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("business_id", biz.ID),
		slog.Time("expires_at", expiresAt),
	)

	// 5. Return the raw token (not the fingerprint).
	return token, invite, nil
}

// AcceptInvite redeems an invite token and creates the employee's account
// bound to the inviting business. Consumption is a single conditional delete
// inside the same transaction that creates the user, so two concurrent
// acceptances of one token produce exactly one account and an expired invite
// produces none.
func (s *InviteService) AcceptInvite(
	ctx context.Context,
	inviteToken string,
	email string,
	password string,
) (domain.User, domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	email = strings.ToLower(strings.TrimSpace(email))
	if inviteToken == "" || email == "" || len(password) < 8 {
		return domain.User{}, domain.Invite{}, ErrInvalidInviteRequest
	}

	// 2. Verify the email is available before consuming anything.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("invite acceptance with taken email")
		return domain.User{}, domain.Invite{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, domain.Invite{}, err
	}

	// 3. Hash the password outside the transaction; Argon2id is slow.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, domain.Invite{}, err
	}

	// 4. Consume the invite and create user + profile in one transaction.
	// If account creation fails the consume rolls back and the token stays
	// redeemable.
	fingerprint := cryptox.FingerprintToken(inviteToken)
	now := time.Now().UTC()

	var (
		invite  domain.Invite
		newUser domain.User
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		invite, err = tx.Invites().ConsumeInviteByTokenHash(ctx, fingerprint, now)
		if err != nil {
			return err
		}

		businessID := invite.BusinessID
		newUser = domain.User{
			ID:           idx.New().String(),
			Email:        email,
			PasswordHash: passwordHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Users().CreateUser(ctx, newUser); err != nil {
			return err
		}
		return tx.Profiles().CreateProfile(ctx, domain.Profile{
			ID:                  newUser.ID,
			BelongsToBusinessID: &businessID,
			SubscriptionTier:    domain.TierFree,
			OnboardingCompleted: true, // employees skip onboarding; their tenant comes from the invite
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Invite{}, s.classifyMiss(ctx, fingerprint, now)
		}
		log.Error("failed to redeem invite", slog.Any("error", err))
		return domain.User{}, domain.Invite{}, err
	}

	log.Info("employee registered via invite",
		slog.String("user_id", newUser.ID),
		slog.String("invite_id", invite.ID),
		slog.String("business_id", invite.BusinessID),
	)
	return newUser, invite, nil
}

// classifyMiss distinguishes an expired invite from one that never existed
// (or was already consumed). The read does not consume anything.
func (s *InviteService) classifyMiss(ctx context.Context, fingerprint string, now time.Time) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite acceptance with unknown or spent token")
			return ErrInviteNotFound
		}
		return err
	}
	if inv.Expired(now) {
		log.Warn("invite acceptance with expired token", slog.String("invite_id", inv.ID))
		return ErrInviteExpired
	}
	return ErrInviteNotFound
}
