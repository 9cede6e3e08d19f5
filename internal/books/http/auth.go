package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/jwtx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type SignupHandler struct {
	AccountService *service.AccountService
	Signer         *jwtx.Signer
}

// ServeHTTP godoc
//
//	@Summary		Account Signup Endpoint
//	@Description	Register a self-serve account. New accounts start on the free tier with no business;
//	@Description	onboarding (POST /v1/businesses) grants the tenant scope.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.SignupRequest	true	"Signup request"
//	@Success		201		{object}	booksdk.AuthResponse	"user_id, access_token, token_type, expires_in"
//	@Failure		400		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req booksdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.AccountService.Signup(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "A valid email and a password of at least 8 characters are required",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeEmailTaken,
				ErrorDescription: "An account with this email already exists",
			})
		default:
			log.Error("signup failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to create account",
			})
		}
		return
	}

	writeAuthResponse(w, http.StatusCreated, h.Signer, user, log)
}

type LoginHandler struct {
	AccountService *service.AccountService
	Signer         *jwtx.Signer
}

// ServeHTTP godoc
//
//	@Summary		Account Login Endpoint
//	@Description	Exchange email and password for a Bearer session token.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	booksdk.AuthResponse	"user_id, access_token, token_type, expires_in"
//	@Failure		400		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req booksdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccountRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Email and password are required",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidCredentials,
				ErrorDescription: "Invalid email or password",
			})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to log in",
			})
		}
		return
	}

	writeAuthResponse(w, http.StatusOK, h.Signer, user, log)
}

func writeAuthResponse(w http.ResponseWriter, status int, signer *jwtx.Signer, user domain.User, log *slog.Logger) {
	claims := jwtx.NewClaims(signer.Issuer(), user.ID, user.Email, jwtx.DefaultAccessTokenTTL)
	token, err := signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to issue session token",
		})
		return
	}

	httpx.WriteJSON(w, status, booksdk.AuthResponse{
		UserID:      user.ID,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(jwtx.DefaultAccessTokenTTL.Seconds()),
	})
}
