package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type InviteMintHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Invite Mint Endpoint
//	@Description	Mint a single-use employee invite for the caller's owned business and return the
//	@Description	raw token. Only a fingerprint is stored server-side. Requires the employee
//	@Description	management feature (enterprise tier).
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.MintInviteRequest	true	"Invite request"
//	@Success		200		{object}	booksdk.MintInviteResponse	"invite_token, business_id, expires_at"
//	@Failure		400		{object}	booksdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	booksdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	booksdk.DenialResponse		"error, reason, required_tier"
//	@Failure		500		{object}	booksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/mint [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req booksdk.MintInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	// The feature guard already loaded and verified the caller.
	state, ok := ActorFromCtx(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != 0 {
		expiresAt = time.Unix(req.ExpiresAt, 0)
	}

	token, invite, err := h.InviteService.MintInvite(ctx, state.User.ID, req.Email, req.Role, req.EmployeeRole, expiresAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "email and role are required and expiry must be in the future",
			})
		case errors.Is(err, service.ErrNoOwnedBusiness):
			httpx.WriteJSON(w, http.StatusConflict, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeTenantMissing,
				ErrorDescription: "Only a business owner can mint invites",
			})
		default:
			log.Error("failed to mint invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to create invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, booksdk.MintInviteResponse{
		InviteToken: token,
		BusinessID:  invite.BusinessID,
		ExpiresAt:   invite.ExpiresAt.Unix(),
	})
}
