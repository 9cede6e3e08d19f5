package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type InviteAcceptHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Invite Accept Endpoint
//	@Description	Redeem an invite token and create the invited employee's account, bound to the
//	@Description	inviting business. Tokens are single-use: concurrent acceptances produce exactly
//	@Description	one account, and an expired invite creates nothing.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.AcceptInviteRequest		true	"Acceptance request"
//	@Success		201		{object}	booksdk.AcceptInviteResponse	"user_id, business_id, role"
//	@Failure		400		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/accept [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req booksdk.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, invite, err := h.InviteService.AcceptInvite(ctx, req.InviteToken, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "invite_token, email and a password of at least 8 characters are required",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeEmailTaken,
				ErrorDescription: "An account with this email already exists",
			})
		case errors.Is(err, service.ErrInviteExpired):
			httpx.WriteJSON(w, http.StatusGone, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInviteExpired,
				ErrorDescription: "This invite has expired; ask for a new one",
			})
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInviteInvalid,
				ErrorDescription: "Invite token is invalid or already used",
			})
		default:
			log.Error("failed to accept invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to accept invite",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, booksdk.AcceptInviteResponse{
		UserID:     user.ID,
		BusinessID: invite.BusinessID,
		Role:       invite.Role,
	})
}
