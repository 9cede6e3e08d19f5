package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

// WebhookSecretHeader authenticates the billing provider's callbacks.
const WebhookSecretHeader = "X-Webhook-Secret"

type SubscriptionWebhookHandler struct {
	SubscriptionService *service.SubscriptionService
	Secret              string
}

// ServeHTTP godoc
//
//	@Summary		Subscription Webhook Endpoint
//	@Description	Apply a tier change pushed by the billing provider. Authenticated with a shared
//	@Description	secret header. The change takes effect on the user's next request; no access
//	@Description	decision is cached anywhere.
//	@Tags			Subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Secret	header		string						true	"Shared webhook secret"
//	@Param			request				body		booksdk.SubscriptionEvent	true	"Subscription event"
//	@Success		204					"tier applied"
//	@Failure		400					{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		401					{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		404					{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		500					{object}	booksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/subscriptions/webhook [post].
func (h *SubscriptionWebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	provided := r.Header.Get(WebhookSecretHeader)
	if h.Secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.Secret)) != 1 {
		log.Warn("webhook call with bad or missing secret")
		httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Invalid webhook secret",
		})
		return
	}

	var event booksdk.SubscriptionEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if event.UserID == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "user_id is required",
		})
		return
	}

	err := h.SubscriptionService.ApplyTierChange(ctx, event.UserID, domain.Tier(event.Tier))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTier):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "tier must be one of free, premium, enterprise",
			})
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Unknown user",
			})
		default:
			log.Error("failed to apply tier change", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to apply tier change",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
