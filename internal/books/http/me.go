package http

import (
	"net/http"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type MeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Return the caller's profile, subscription tier and resolved tenant scope.
//	@Description	The state is loaded fresh from the store on every call.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	booksdk.MeResponse		"user_id, email, subscription_tier, tenant_id, onboarding_completed, business"
//	@Failure		401	{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	booksdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	state, err := h.AccountService.LoadActor(ctx, userID)
	if err != nil {
		log.Error("failed to load account state", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to load account",
		})
		return
	}

	resp := booksdk.MeResponse{
		UserID:              state.User.ID,
		Email:               state.User.Email,
		SubscriptionTier:    string(state.Profile.SubscriptionTier),
		TenantID:            state.TenantID,
		OnboardingCompleted: state.Profile.OnboardingCompleted,
	}
	if state.Business != nil {
		resp.Business = businessSummary(*state.Business)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func businessSummary(b domain.Business) *booksdk.BusinessSummary {
	return &booksdk.BusinessSummary{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		LegalName:    b.LegalName,
		ContactEmail: b.ContactEmail,
		Currency:     b.Currency,
	}
}
