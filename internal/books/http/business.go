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

type BusinessCreateHandler struct {
	TenantService  *service.TenantService
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Business Creation Endpoint
//	@Description	Complete onboarding by creating the caller's owned business. The owned business
//	@Description	immediately becomes the caller's tenant scope; a user owns at most one business.
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.CreateBusinessRequest	true	"Business details"
//	@Success		201		{object}	booksdk.BusinessSummary			"id, owner_id, name, currency"
//	@Failure		400		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/businesses [post].
func (h *BusinessCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req booksdk.CreateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	biz, err := h.TenantService.CreateBusiness(ctx, userID, req.Name, req.LegalName, req.ContactEmail, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTenantRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "name is required",
			})
		case errors.Is(err, service.ErrBusinessExists):
			httpx.WriteJSON(w, http.StatusConflict, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "You already own a business",
			})
		default:
			log.Error("failed to create business", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to create business",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, businessSummary(biz))
}

type TenantSwitchHandler struct {
	TenantService *service.TenantService
}

// ServeHTTP godoc
//
//	@Summary		Tenant Switch Endpoint
//	@Description	Re-bind the caller's membership to a different business. The target must exist;
//	@Description	switching to a missing business fails and leaves the previous binding untouched.
//	@Tags			Businesses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.SwitchTenantRequest		true	"Target business"
//	@Success		200		{object}	booksdk.SwitchTenantResponse	"tenant_id"
//	@Failure		400		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tenant/switch [post].
func (h *TenantSwitchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req booksdk.SwitchTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	biz, err := h.TenantService.SwitchTenant(ctx, userID, req.BusinessID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTenantRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "business_id is required",
			})
		case errors.Is(err, service.ErrBusinessNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Business not found; your current tenant is unchanged",
			})
		default:
			log.Error("failed to switch tenant", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeServerError,
				ErrorDescription: "Failed to switch tenant",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, booksdk.SwitchTenantResponse{TenantID: biz.ID})
}
