package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/access"
	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/pkg/cryptox"
	"github.com/eazybooks/eazybooks/pkg/idx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

var (
	ErrInvalidAccountRequest = errors.New("invalid account request")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserNotFound          = errors.New("user not found")
)

type AccountService struct {
	Store store.Store
}

// Signup registers a self-serve account. Every new account starts on the
// free tier with no tenant; the onboarding flow creates the business later.
func (s *AccountService) Signup(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || len(password) < 8 {
		log.Warn("signup rejected: missing or malformed fields")
		return domain.User{}, ErrInvalidAccountRequest
	}

	// 2. Verify email is available
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("signup attempted with taken email")
		return domain.User{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Hash the password using Argon2id
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 4. Create user and profile atomically so a half-registered account
	// can never exist.
	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := domain.Profile{
		ID:               user.ID,
		SubscriptionTier: domain.TierFree,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Profiles().CreateProfile(ctx, profile)
	})
	if err != nil {
		log.Error("failed to create account", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("account created", slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and returns the user on success.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidAccountRequest
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown email")
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login attempted with wrong password", slog.String("user_id", user.ID))
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Debug("login succeeded", slog.String("user_id", user.ID))
	return user, nil
}

// ActorState is everything access decisions need about a caller, loaded fresh
// from the store. Decisions are never cached across requests; a tier change
// is visible to the very next call.
type ActorState struct {
	User     domain.User
	Profile  domain.Profile
	Business *domain.Business // the business the user owns, if any
	TenantID string
	Actor    access.Actor
}

// LoadActor fetches the caller's user, profile, and owned business, and
// resolves the tenant scope. The zero-value tenant means "no tenant".
func (s *AccountService) LoadActor(ctx context.Context, userID string) (ActorState, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ActorState{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return ActorState{}, err
	}

	profile, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ActorState{}, ErrUserNotFound
		}
		log.Error("failed to fetch profile", slog.Any("error", err))
		return ActorState{}, err
	}

	var owned *domain.Business
	biz, err := s.Store.Businesses().GetBusinessByOwner(ctx, userID)
	switch {
	case err == nil:
		owned = &biz
	case errors.Is(err, store.ErrNotFound):
		// not an owner; membership binding may still apply
	default:
		log.Error("failed to fetch owned business", slog.Any("error", err))
		return ActorState{}, err
	}

	tenantID, _ := access.ResolveTenant(profile, owned)

	return ActorState{
		User:     user,
		Profile:  profile,
		Business: owned,
		TenantID: tenantID,
		Actor: access.Actor{
			UserID:   user.ID,
			Tier:     profile.SubscriptionTier,
			TenantID: tenantID,
		},
	}, nil
}
