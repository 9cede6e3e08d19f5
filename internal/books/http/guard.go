package http

import (
	"context"
	"net/http"

	"github.com/eazybooks/eazybooks/internal/books/access"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type ctxKey string

// ctxKeyActor carries the caller's loaded ActorState past a feature guard so
// handlers do not re-fetch it.
const ctxKeyActor ctxKey = "actor_state"

// ActorFromCtx returns the ActorState stashed by RequireFeature.
func ActorFromCtx(ctx context.Context) (service.ActorState, bool) {
	state, ok := ctx.Value(ctxKeyActor).(service.ActorState)
	return state, ok
}

// RequireFeature guards a route behind a feature key. It loads the caller's
// state fresh from the store on every request, resolves their tenant, and
// runs the access decision. Order matters: a caller with no tenant is told
// "no_tenant" even when their tier is also too low, and a store failure
// always denies.
//
// Denials map to:
//
//	no_tenant         -> 409 Conflict (finish onboarding first)
//	insufficient_tier -> 403 Forbidden (upgrade prompt)
//	unavailable       -> 503 Service Unavailable
func (rt *Router) RequireFeature(featureKey string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
			if !ok || userID == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
					Error:            "unauthorized",
					ErrorDescription: "Authentication required",
				})
				return
			}

			state, err := rt.AccountService.LoadActor(ctx, userID)
			if err != nil {
				// Fail closed: an unreadable actor never gets access.
				log.Error("failed to load actor for guard", "feature", featureKey, "err", err)
				writeDenial(w, access.Unavailable())
				return
			}

			decision := access.Guard(state.Actor, featureKey)
			if !decision.Allowed {
				log.Info("feature access blocked",
					"feature", featureKey,
					"reason", string(decision.Reason),
					"user_id", userID,
				)
				writeDenial(w, decision)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKeyActor, state)))
		})
	}
}

func writeDenial(w http.ResponseWriter, decision access.Decision) {
	status := http.StatusForbidden
	reason := string(decision.Reason)

	switch decision.Reason {
	case access.ReasonNoTenant:
		status = http.StatusConflict
	case access.ReasonUnavailable:
		status = http.StatusServiceUnavailable
	}

	resp := booksdk.DenialResponse{
		Error:  booksdk.ErrorCodeAccessBlocked,
		Reason: reason,
	}
	if decision.Reason == access.ReasonInsufficientTier {
		resp.RequiredTier = string(decision.RequiredTier)
		resp.UserTier = string(decision.UserTier)
	}

	httpx.WriteJSON(w, status, resp)
}
