package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type InvoicesHandler struct {
	RecordsService *service.RecordsService
}

// HandleCreate godoc
//
//	@Summary		Invoice Creation Endpoint
//	@Description	Create an invoice in the caller's active tenant. Requires the invoicing feature.
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.InvoiceRequest	true	"Invoice details"
//	@Success		201		{object}	booksdk.InvoiceResponse	"id, business_id, amount_cents, status"
//	@Failure		400		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	booksdk.DenialResponse	"error, reason, required_tier"
//	@Failure		409		{object}	booksdk.DenialResponse	"error, reason"
//	@Failure		500		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices [post].
func (h *InvoicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	state, ok := ActorFromCtx(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	var req booksdk.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	var dueAt *time.Time
	if req.DueAt != 0 {
		t := time.Unix(req.DueAt, 0)
		dueAt = &t
	}

	inv, err := h.RecordsService.CreateInvoice(ctx, state.Actor.TenantID,
		req.CustomerName, req.Number, req.AmountCents, req.Currency, "", time.Time{}, dueAt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecordRequest) {
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "customer_name and a positive amount_cents are required",
			})
			return
		}
		log.Error("failed to create invoice", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to create invoice",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invoiceResponse(inv))
}

// HandleList godoc
//
//	@Summary		Invoice Listing Endpoint
//	@Description	List the caller's tenant's invoices, newest first. Requires the invoicing feature.
//	@Tags			Records
//	@Produce		json
//	@Success		200	{object}	booksdk.InvoiceListResponse	"invoices"
//	@Failure		401	{object}	booksdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	booksdk.DenialResponse		"error, reason, required_tier"
//	@Failure		409	{object}	booksdk.DenialResponse		"error, reason"
//	@Failure		500	{object}	booksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices [get].
func (h *InvoicesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	state, ok := ActorFromCtx(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, booksdk.ErrorResponse{
			Error:            "unauthorized",
			ErrorDescription: "Authentication required",
		})
		return
	}

	invoices, err := h.RecordsService.ListInvoices(ctx, state.Actor.TenantID)
	if err != nil {
		log.Error("failed to list invoices", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list invoices",
		})
		return
	}

	resp := booksdk.InvoiceListResponse{Invoices: make([]booksdk.InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, invoiceResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func invoiceResponse(inv domain.Invoice) booksdk.InvoiceResponse {
	out := booksdk.InvoiceResponse{
		ID:           inv.ID,
		BusinessID:   inv.BusinessID,
		CustomerName: inv.CustomerName,
		Number:       inv.Number,
		AmountCents:  inv.AmountCents,
		Currency:     inv.Currency,
		Status:       inv.Status,
		IssuedAt:     inv.IssuedAt.Unix(),
	}
	if inv.DueAt != nil {
		out.DueAt = inv.DueAt.Unix()
	}
	return out
}
