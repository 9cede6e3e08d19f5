package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedOwnerAndBusiness(t *testing.T, s *Store) (domain.User, domain.Business) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	owner := domain.User{
		ID:           ulid.Make().String(),
		Email:        "owner@example.com",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(ctx, owner))

	biz := domain.Business{
		ID:        ulid.Make().String(),
		OwnerID:   owner.ID,
		Name:      "Crumb & Co",
		Currency:  "AUD",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Businesses().CreateBusiness(ctx, biz))
	return owner, biz
}

func TestConsumeInvite_RemovesRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner, biz := seedOwnerAndBusiness(t, s)
	now := time.Now().UTC()

	inv := domain.Invite{
		ID:         ulid.Make().String(),
		TokenHash:  "hash-1",
		Email:      "worker@example.com",
		BusinessID: biz.ID,
		InvitedBy:  owner.ID,
		Role:       "employee",
		ExpiresAt:  now.Add(domain.DefaultInviteTTL),
		CreatedAt:  now,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	got, err := s.Invites().ConsumeInviteByTokenHash(ctx, "hash-1", now)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, biz.ID, got.BusinessID)

	// Second consume of the same token must fail: the row is gone.
	_, err = s.Invites().ConsumeInviteByTokenHash(ctx, "hash-1", now)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Invites().GetInviteByTokenHash(ctx, "hash-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConsumeInvite_ExpiredNotConsumable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner, biz := seedOwnerAndBusiness(t, s)
	now := time.Now().UTC()

	inv := domain.Invite{
		ID:         ulid.Make().String(),
		TokenHash:  "hash-expired",
		Email:      "late@example.com",
		BusinessID: biz.ID,
		InvitedBy:  owner.ID,
		Role:       "employee",
		ExpiresAt:  now.Add(-time.Minute),
		CreatedAt:  now.Add(-time.Hour),
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	_, err := s.Invites().ConsumeInviteByTokenHash(ctx, "hash-expired", now)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// The expired row is still readable, so callers can report "expired"
	// instead of "unknown token".
	got, err := s.Invites().GetInviteByTokenHash(ctx, "hash-expired")
	require.NoError(t, err)
	assert.True(t, got.Expired(now))
}

func TestConsumeInvite_ConcurrentSingleWinner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner, biz := seedOwnerAndBusiness(t, s)
	now := time.Now().UTC()

	inv := domain.Invite{
		ID:         ulid.Make().String(),
		TokenHash:  "hash-race",
		Email:      "raced@example.com",
		BusinessID: biz.ID,
		InvitedBy:  owner.ID,
		Role:       "employee",
		ExpiresAt:  now.Add(domain.DefaultInviteTTL),
		CreatedAt:  now,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	const attempts = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Invites().ConsumeInviteByTokenHash(ctx, "hash-race", now); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestDeleteExpiredInvites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner, biz := seedOwnerAndBusiness(t, s)
	now := time.Now().UTC()

	for i, hash := range []string{"live", "stale"} {
		expires := now.Add(time.Hour)
		if i == 1 {
			expires = now.Add(-time.Hour)
		}
		require.NoError(t, s.Invites().CreateInvite(ctx, domain.Invite{
			ID:         ulid.Make().String(),
			TokenHash:  hash,
			Email:      "e@example.com",
			BusinessID: biz.ID,
			InvitedBy:  owner.ID,
			Role:       "employee",
			ExpiresAt:  expires,
			CreatedAt:  now,
		}))
	}

	require.NoError(t, s.Invites().DeleteExpiredInvites(ctx, now))

	_, err := s.Invites().GetInviteByTokenHash(ctx, "live")
	assert.NoError(t, err)
	_, err = s.Invites().GetInviteByTokenHash(ctx, "stale")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	boom := assert.AnError
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID:           ulid.Make().String(),
			Email:        "gone@example.com",
			PasswordHash: "x",
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByEmail(ctx, "gone@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSumsGroupByTenant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, biz := seedOwnerAndBusiness(t, s)
	now := time.Now().UTC()

	for _, inv := range []domain.Invoice{
		{ID: ulid.Make().String(), BusinessID: biz.ID, CustomerName: "A", AmountCents: 10_00, Currency: "AUD", Status: domain.InvoiceStatusPaid, IssuedAt: now, CreatedAt: now, UpdatedAt: now},
		{ID: ulid.Make().String(), BusinessID: biz.ID, CustomerName: "B", AmountCents: 25_00, Currency: "AUD", Status: domain.InvoiceStatusSent, IssuedAt: now, CreatedAt: now, UpdatedAt: now},
	} {
		require.NoError(t, s.Invoices().CreateInvoice(ctx, inv))
	}
	require.NoError(t, s.Expenses().CreateExpense(ctx, domain.Expense{
		ID: ulid.Make().String(), BusinessID: biz.ID, Category: "rent",
		AmountCents: 7_50, IncurredAt: now, CreatedAt: now,
	}))

	total, err := s.Invoices().SumInvoicesByBusiness(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(35_00), total)

	byStatus, err := s.Invoices().SumInvoicesByStatus(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_00), byStatus[domain.InvoiceStatusPaid])
	assert.Equal(t, int64(25_00), byStatus[domain.InvoiceStatusSent])

	byCat, err := s.Expenses().SumExpensesByCategory(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7_50), byCat["rent"])

	// Another tenant sees nothing.
	other, err := s.Invoices().SumInvoicesByBusiness(ctx, "no-such-business")
	require.NoError(t, err)
	assert.Zero(t, other)
}
