package store

import (
	"context"
	"errors"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Profiles() Profiles
	Businesses() Businesses
	Invites() Invites
	Invoices() Invoices
	Expenses() Expenses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn errors
	// and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and signup uniqueness checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error
}

type Profiles interface {
	// GetProfile returns the profile for a user id.
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)

	// CreateProfile inserts a new profile (id matches the user id).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdateSubscriptionTier sets the tier and bumps updated_at.
	UpdateSubscriptionTier(ctx context.Context, userID string, tier domain.Tier) error

	// UpdateBelongsToBusiness re-binds the membership tenant. nil clears it.
	UpdateBelongsToBusiness(ctx context.Context, userID string, businessID *string) error

	// SetOnboardingCompleted flips the onboarding flag.
	SetOnboardingCompleted(ctx context.Context, userID string) error
}

type Businesses interface {
	// GetBusinessByID fetches one business.
	GetBusinessByID(ctx context.Context, id string) (domain.Business, error)

	// GetBusinessByOwner fetches the business a user owns, if any.
	GetBusinessByOwner(ctx context.Context, ownerID string) (domain.Business, error)

	// CreateBusiness inserts a new business. A user owns at most one.
	CreateBusiness(ctx context.Context, b domain.Business) error
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is the SHA-256
	// fingerprint of the opaque invite token).
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// ConsumeInviteByTokenHash atomically deletes and returns the
	// not-yet-expired invite matching hash. This is a single conditional
	// DELETE so two concurrent acceptances can never both succeed;
	// the loser gets ErrNotFound.
	ConsumeInviteByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Invite, error)

	// GetInviteByTokenHash reads an invite without consuming it, expired or
	// not. Used to distinguish "expired" from "never existed".
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// DeleteExpiredInvites is housekeeping.
	DeleteExpiredInvites(ctx context.Context, now time.Time) error
}

type Invoices interface {
	// CreateInvoice inserts a new invoice carrying its business_id.
	CreateInvoice(ctx context.Context, inv domain.Invoice) error

	// ListInvoicesByBusiness returns the tenant's invoices, newest first.
	ListInvoicesByBusiness(ctx context.Context, businessID string) ([]domain.Invoice, error)

	// SumInvoicesByBusiness totals invoice amounts for the tenant.
	SumInvoicesByBusiness(ctx context.Context, businessID string) (int64, error)

	// SumInvoicesByStatus totals invoice amounts per status for the tenant.
	SumInvoicesByStatus(ctx context.Context, businessID string) (map[string]int64, error)
}

type Expenses interface {
	// CreateExpense inserts a new expense carrying its business_id.
	CreateExpense(ctx context.Context, e domain.Expense) error

	// ListExpensesByBusiness returns the tenant's expenses, newest first.
	ListExpensesByBusiness(ctx context.Context, businessID string) ([]domain.Expense, error)

	// SumExpensesByBusiness totals expense amounts for the tenant.
	SumExpensesByBusiness(ctx context.Context, businessID string) (int64, error)

	// SumExpensesByCategory totals expense amounts per category for the tenant.
	SumExpensesByCategory(ctx context.Context, businessID string) (map[string]int64, error)
}
