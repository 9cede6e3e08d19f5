package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/internal/books/store/drivers/sqlite"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/cryptox"
	"github.com/eazybooks/eazybooks/pkg/jwtx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec-test"

func newTestServer(t *testing.T) (*httptest.Server, *booksdk.Client) {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSigner("eazybooks-test")
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "eazybooks-test", Level: "error", Format: "text"})

	router := NewRouter(signer, "test", testWebhookSecret, st, logger)
	router.AccountService = &service.AccountService{Store: st}
	router.TenantService = &service.TenantService{Store: st}
	router.InviteService = &service.InviteService{Store: st}
	router.SubscriptionService = &service.SubscriptionService{Store: st}
	router.RecordsService = &service.RecordsService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, booksdk.NewClient(srv.URL)
}

func pushTierChange(t *testing.T, srv *httptest.Server, secret, userID, tier string) *http.Response {
	t.Helper()

	body, err := json.Marshal(booksdk.SubscriptionEvent{UserID: userID, Tier: tier})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/subscriptions/webhook", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(WebhookSecretHeader, secret)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestGuardBlocksWithoutTenantBeforeTier(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	session, err := client.Signup(ctx, "owner@example.com", "correct-horse-battery")
	require.NoError(t, err)

	// Even on the highest tier, a caller with no tenant is told no_tenant.
	resp := pushTierChange(t, srv, testWebhookSecret, session.UserID(), "enterprise")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err = session.CreateInvoice(ctx, booksdk.InvoiceRequest{CustomerName: "C", AmountCents: 100})
	var blocked *booksdk.AccessBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, booksdk.DenialReasonNoTenant, blocked.Reason)
	assert.Equal(t, http.StatusConflict, blocked.StatusCode)
}

func TestFullFlow_OnboardingTierAndInvites(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	session, err := client.Signup(ctx, "owner@example.com", "correct-horse-battery")
	require.NoError(t, err)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "free", me.SubscriptionTier)
	assert.Empty(t, me.TenantID)
	assert.False(t, me.OnboardingCompleted)

	biz, err := session.CreateBusiness(ctx, booksdk.CreateBusinessRequest{Name: "Crumb & Co"})
	require.NoError(t, err)

	me, err = session.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, biz.ID, me.TenantID)
	assert.True(t, me.OnboardingCompleted)

	// Free tier covers invoicing and expense tracking.
	_, err = session.CreateInvoice(ctx, booksdk.InvoiceRequest{CustomerName: "Acme", AmountCents: 250_00})
	require.NoError(t, err)
	_, err = session.CreateExpense(ctx, booksdk.ExpenseRequest{Category: "rent", AmountCents: 90_00})
	require.NoError(t, err)

	list, err := session.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, list.Invoices, 1)
	assert.Equal(t, biz.ID, list.Invoices[0].BusinessID)

	// Basic report is free; the full breakdown is premium.
	summary, err := session.ReportSummary(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(250_00), summary.InvoicedCents)
	assert.Equal(t, int64(160_00), summary.NetCents)

	_, err = session.ReportSummary(ctx, true)
	var blocked *booksdk.AccessBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, booksdk.DenialReasonInsufficientTier, blocked.Reason)
	assert.Equal(t, "premium", blocked.RequiredTier)
	assert.Equal(t, "free", blocked.UserTier)

	// Upgrade to premium: the next request sees the change.
	resp := pushTierChange(t, srv, testWebhookSecret, session.UserID(), "premium")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	summary, err = session.ReportSummary(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(250_00), summary.InvoicesByStatus["draft"])
	assert.Equal(t, int64(90_00), summary.ExpensesByCategory["rent"])

	// Employee management needs enterprise.
	_, err = session.MintInvite(ctx, booksdk.MintInviteRequest{Email: "worker@example.com", Role: "employee"})
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, booksdk.DenialReasonInsufficientTier, blocked.Reason)
	assert.Equal(t, "enterprise", blocked.RequiredTier)

	resp = pushTierChange(t, srv, testWebhookSecret, session.UserID(), "enterprise")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	minted, err := session.MintInvite(ctx, booksdk.MintInviteRequest{Email: "worker@example.com", Role: "employee", EmployeeRole: "bookkeeper"})
	require.NoError(t, err)
	assert.Equal(t, biz.ID, minted.BusinessID)

	accepted, err := client.AcceptInvite(ctx, booksdk.AcceptInviteRequest{
		InviteToken: minted.InviteToken,
		Email:       "worker@example.com",
		Password:    "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, biz.ID, accepted.BusinessID)
	assert.Equal(t, "employee", accepted.Role)

	// The employee logs in and sees the owner's business as their tenant.
	workerSession, err := client.Login(ctx, "worker@example.com", "correct-horse-battery")
	require.NoError(t, err)
	workerMe, err := workerSession.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, biz.ID, workerMe.TenantID)
	assert.Equal(t, "free", workerMe.SubscriptionTier)
	assert.Nil(t, workerMe.Business)

	// The employee's free tier is their own; the owner's upgrade does not
	// carry over, so full reports stay blocked for them.
	_, err = workerSession.ReportSummary(ctx, true)
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, booksdk.DenialReasonInsufficientTier, blocked.Reason)
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	session, err := client.Signup(ctx, "owner@example.com", "correct-horse-battery")
	require.NoError(t, err)

	resp := pushTierChange(t, srv, "wrong-secret", session.UserID(), "premium")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "free", me.SubscriptionTier)
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/me", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
}

func TestLivezAndReadyz(t *testing.T) {
	srv, client := newTestServer(t)
	ctx := context.Background()

	health, err := client.Livez(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	resp, err := srv.Client().Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ready booksdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ready))
	require.NotNil(t, ready.Checks)
	assert.Equal(t, "ok", ready.Checks.Database)
	assert.Equal(t, "ok", ready.Checks.Signer)
}
