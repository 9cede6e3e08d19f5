package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/access"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/jwtx"
	"github.com/eazybooks/eazybooks/pkg/slogx"

	_ "github.com/eazybooks/eazybooks/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer        *jwtx.Signer
	buildVersion  string
	webhookSecret string
	startTime     time.Time
	logger        *slog.Logger

	store               store.Store
	AccountService      *service.AccountService
	TenantService       *service.TenantService
	InviteService       *service.InviteService
	SubscriptionService *service.SubscriptionService
	RecordsService      *service.RecordsService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	webhookSecret string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		signer:        signer,
		buildVersion:  buildVersion,
		webhookSecret: webhookSecret,
		startTime:     time.Now(),
		store:         st,
		logger:        logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerTenants()
	r.registerInvites()
	r.registerSubscriptions()
	r.registerRecords()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			EazyBooks API
//	@version		0.1.0
//	@description	Small-business accounting backend: accounts, businesses, employee invites,
//	@description	subscription tiers and tenant-scoped books (invoices, expenses, reports).
//	@description
//	@description				Feature access is decided per request from the caller's subscription
//	@description				tier and active tenant. Nothing is cached between requests.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	signupHandler := &SignupHandler{AccountService: r.AccountService, Signer: r.signer}
	loginHandler := &LoginHandler{AccountService: r.AccountService, Signer: r.signer}
	meHandler := &MeHandler{AccountService: r.AccountService}

	// Credential endpoints get the strict limit: they are the brute-force surface.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTenants() {
	createHandler := &BusinessCreateHandler{TenantService: r.TenantService, AccountService: r.AccountService}
	switchHandler := &TenantSwitchHandler{TenantService: r.TenantService}

	r.Mux.Handle("POST /v1/businesses",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/tenant/switch",
		httpx.Chain(switchHandler,
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	mintHandler := &InviteMintHandler{InviteService: r.InviteService}
	acceptHandler := &InviteAcceptHandler{InviteService: r.InviteService}

	// Minting is an owner operation behind the employee management feature.
	r.Mux.Handle("POST /v1/invites/mint",
		httpx.Chain(mintHandler,
			httpx.AuthnMiddleware(r.signer),
			r.RequireFeature(access.FeatureEmployeeManagement),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Acceptance is unauthenticated: the invitee has no account yet.
	r.Mux.Handle("POST /v1/invites/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSubscriptions() {
	webhookHandler := &SubscriptionWebhookHandler{
		SubscriptionService: r.SubscriptionService,
		Secret:              r.webhookSecret,
	}

	r.Mux.Handle("POST /v1/subscriptions/webhook",
		httpx.Chain(webhookHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRecords() {
	invoicesHandler := &InvoicesHandler{RecordsService: r.RecordsService}
	expensesHandler := &ExpensesHandler{RecordsService: r.RecordsService}
	reportsHandler := &ReportsHandler{RecordsService: r.RecordsService}

	r.Mux.Handle("POST /v1/invoices",
		httpx.Chain(http.HandlerFunc(invoicesHandler.HandleCreate),
			httpx.AuthnMiddleware(r.signer),
			r.RequireFeature(access.FeatureInvoicing),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/invoices",
		httpx.Chain(http.HandlerFunc(invoicesHandler.HandleList),
			httpx.AuthnMiddleware(r.signer),
			r.RequireFeature(access.FeatureInvoicing),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/expenses",
		httpx.Chain(http.HandlerFunc(expensesHandler.HandleCreate),
			httpx.AuthnMiddleware(r.signer),
			r.RequireFeature(access.FeatureExpenseTracking),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/expenses",
		httpx.Chain(http.HandlerFunc(expensesHandler.HandleList),
			httpx.AuthnMiddleware(r.signer),
			r.RequireFeature(access.FeatureExpenseTracking),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/reports/summary",
		httpx.Chain(reportsHandler,
			httpx.AuthnMiddleware(r.signer),
			r.RequireFeature(access.FeatureBasicReporting),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
}
