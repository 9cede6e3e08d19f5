package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/access"
	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/internal/books/store/drivers/sqlite"
	"github.com/eazybooks/eazybooks/pkg/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// onboardOwner signs up a user and creates their business.
func onboardOwner(t *testing.T, st store.Store, email string) (domain.User, domain.Business) {
	t.Helper()
	ctx := context.Background()

	accounts := &AccountService{Store: st}
	tenants := &TenantService{Store: st}

	user, err := accounts.Signup(ctx, email, "correct-horse-battery")
	require.NoError(t, err)

	biz, err := tenants.CreateBusiness(ctx, user.ID, "Crumb & Co", "", "", "AUD")
	require.NoError(t, err)
	return user, biz
}

func TestSignupThenLogin(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	accounts := &AccountService{Store: st}

	user, err := accounts.Signup(ctx, "Owner@Example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)

	// New accounts start on the free tier with no tenant.
	state, err := accounts.LoadActor(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TierFree, state.Actor.Tier)
	assert.Empty(t, state.Actor.TenantID)
	assert.False(t, state.Profile.OnboardingCompleted)

	got, err := accounts.Login(ctx, "owner@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = accounts.Login(ctx, "owner@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = accounts.Signup(ctx, "owner@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestOnboardingGrantsTenant(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	accounts := &AccountService{Store: st}
	tenants := &TenantService{Store: st}

	user, biz := onboardOwner(t, st, "owner@example.com")

	state, err := accounts.LoadActor(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, biz.ID, state.Actor.TenantID)
	assert.True(t, state.Profile.OnboardingCompleted)

	// One business per owner.
	_, err = tenants.CreateBusiness(ctx, user.ID, "Second Shop", "", "", "AUD")
	assert.ErrorIs(t, err, ErrBusinessExists)
}

func TestSwitchTenant_MissingTargetRetainsBinding(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	accounts := &AccountService{Store: st}
	tenants := &TenantService{Store: st}
	invites := &InviteService{Store: st}

	owner, biz := onboardOwner(t, st, "owner@example.com")

	token, _, err := invites.MintInvite(ctx, owner.ID, "worker@example.com", "employee", "bookkeeper", time.Time{})
	require.NoError(t, err)
	worker, _, err := invites.AcceptInvite(ctx, token, "worker@example.com", "correct-horse-battery")
	require.NoError(t, err)

	// Switching to a business that does not exist fails and leaves the
	// previous binding intact.
	_, err = tenants.SwitchTenant(ctx, worker.ID, "01ZZZZZZZZZZZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	state, err := accounts.LoadActor(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, biz.ID, state.Actor.TenantID)
}

func TestAcceptInvite_BindsEmployeeToBusiness(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	accounts := &AccountService{Store: st}
	invites := &InviteService{Store: st}

	owner, biz := onboardOwner(t, st, "owner@example.com")

	token, inv, err := invites.MintInvite(ctx, owner.ID, "worker@example.com", "employee", "bookkeeper", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, biz.ID, inv.BusinessID)
	assert.NotContains(t, token, inv.TokenHash)

	worker, got, err := invites.AcceptInvite(ctx, token, "worker@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	state, err := accounts.LoadActor(ctx, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, biz.ID, state.Actor.TenantID)
	assert.Nil(t, state.Business)
	assert.True(t, state.Profile.OnboardingCompleted)

	// A spent token cannot be redeemed again.
	_, _, err = invites.AcceptInvite(ctx, token, "other@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestAcceptInvite_ExpiredCreatesNothing(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	invites := &InviteService{Store: st}

	owner, _ := onboardOwner(t, st, "owner@example.com")

	token, _, err := invites.MintInvite(ctx, owner.ID, "late@example.com", "employee", "", time.Now().UTC().Add(50*time.Millisecond))
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, _, err = invites.AcceptInvite(ctx, token, "late@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrInviteExpired)

	// No account was created for the failed redemption.
	_, err = st.Users().GetUserByEmail(ctx, "late@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAcceptInvite_ConcurrentRedeemCreatesOneUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	invites := &InviteService{Store: st}

	owner, _ := onboardOwner(t, st, "owner@example.com")

	token, _, err := invites.MintInvite(ctx, owner.ID, "raced@example.com", "employee", "", time.Time{})
	require.NoError(t, err)

	const attempts = 4
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		email := []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com"}[i]
		go func() {
			defer wg.Done()
			if _, _, err := invites.AcceptInvite(ctx, token, email, "correct-horse-battery"); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestMintInvite_RequiresOwnedBusiness(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	accounts := &AccountService{Store: st}
	invites := &InviteService{Store: st}

	user, err := accounts.Signup(ctx, "floating@example.com", "correct-horse-battery")
	require.NoError(t, err)

	_, _, err = invites.MintInvite(ctx, user.ID, "worker@example.com", "employee", "", time.Time{})
	assert.ErrorIs(t, err, ErrNoOwnedBusiness)
}

func TestTierChangeVisibleOnNextLoad(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	accounts := &AccountService{Store: st}
	subs := &SubscriptionService{Store: st}

	user, _ := onboardOwner(t, st, "owner@example.com")

	state, err := accounts.LoadActor(ctx, user.ID)
	require.NoError(t, err)
	denied := access.Guard(state.Actor, access.FeatureAdvancedReporting)
	assert.False(t, denied.Allowed)
	assert.Equal(t, access.ReasonInsufficientTier, denied.Reason)

	require.NoError(t, subs.ApplyTierChange(ctx, user.ID, domain.TierPremium))

	// No caching anywhere: the very next load sees the new tier.
	state, err = accounts.LoadActor(ctx, user.ID)
	require.NoError(t, err)
	allowed := access.Guard(state.Actor, access.FeatureAdvancedReporting)
	assert.True(t, allowed.Allowed)

	assert.ErrorIs(t, subs.ApplyTierChange(ctx, user.ID, domain.Tier("platinum")), ErrInvalidTier)
	assert.ErrorIs(t, subs.ApplyTierChange(ctx, "no-such-user", domain.TierPremium), ErrUserNotFound)
}

func TestRecordsScopedToTenant(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	records := &RecordsService{Store: st}

	_, bizA := onboardOwner(t, st, "a@example.com")
	_, bizB := onboardOwner(t, st, "b@example.com")

	_, err := records.CreateInvoice(ctx, bizA.ID, "Customer", "INV-1", 120_00, "AUD", "", time.Time{}, nil)
	require.NoError(t, err)
	_, err = records.CreateExpense(ctx, bizA.ID, "rent", "september", 40_00, time.Time{})
	require.NoError(t, err)

	summary, err := records.Summarize(ctx, bizA.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(120_00), summary.InvoicedCents)
	assert.Equal(t, int64(40_00), summary.ExpensedCents)
	assert.Equal(t, int64(80_00), summary.NetCents)
	assert.Equal(t, int64(120_00), summary.InvoicesByStatus[domain.InvoiceStatusDraft])
	assert.Equal(t, int64(40_00), summary.ExpensesByCategory["rent"])

	// The other tenant's books are untouched.
	other, err := records.Summarize(ctx, bizB.ID, false)
	require.NoError(t, err)
	assert.Zero(t, other.InvoicedCents)
	assert.Zero(t, other.ExpensedCents)
	assert.Nil(t, other.InvoicesByStatus)

	invoices, err := records.ListInvoices(ctx, bizB.ID)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	_, err = records.CreateInvoice(ctx, bizA.ID, "Customer", "INV-2", -5, "AUD", "", time.Time{}, nil)
	assert.ErrorIs(t, err, ErrInvalidRecordRequest)
}

func TestHousekeepingDeletesExpiredInvites(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	invites := &InviteService{Store: st}

	owner, _ := onboardOwner(t, st, "owner@example.com")

	_, inv, err := invites.MintInvite(ctx, owner.ID, "soon@example.com", "employee", "", time.Now().UTC().Add(50*time.Millisecond))
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, st.Invites().DeleteExpiredInvites(ctx, time.Now().UTC()))

	_, err = st.Invites().GetInviteByTokenHash(ctx, inv.TokenHash)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
