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

type ExpensesHandler struct {
	RecordsService *service.RecordsService
}

// HandleCreate godoc
//
//	@Summary		Expense Creation Endpoint
//	@Description	Record an expense in the caller's active tenant. Requires the expense tracking feature.
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Param			request	body		booksdk.ExpenseRequest	true	"Expense details"
//	@Success		201		{object}	booksdk.ExpenseResponse	"id, business_id, category, amount_cents"
//	@Failure		400		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	booksdk.DenialResponse	"error, reason, required_tier"
//	@Failure		409		{object}	booksdk.DenialResponse	"error, reason"
//	@Failure		500		{object}	booksdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/expenses [post].
func (h *ExpensesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var req booksdk.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	var incurredAt time.Time
	if req.IncurredAt != 0 {
		incurredAt = time.Unix(req.IncurredAt, 0)
	}

	e, err := h.RecordsService.CreateExpense(ctx, state.Actor.TenantID,
		req.Category, req.Description, req.AmountCents, incurredAt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecordRequest) {
			httpx.WriteJSON(w, http.StatusBadRequest, booksdk.ErrorResponse{
				Error:            booksdk.ErrorCodeInvalidRequest,
				ErrorDescription: "category and a positive amount_cents are required",
			})
			return
		}
		log.Error("failed to create expense", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to record expense",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, expenseResponse(e))
}

// HandleList godoc
//
//	@Summary		Expense Listing Endpoint
//	@Description	List the caller's tenant's expenses, newest first. Requires the expense tracking feature.
//	@Tags			Records
//	@Produce		json
//	@Success		200	{object}	booksdk.ExpenseListResponse	"expenses"
//	@Failure		401	{object}	booksdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	booksdk.DenialResponse		"error, reason, required_tier"
//	@Failure		409	{object}	booksdk.DenialResponse		"error, reason"
//	@Failure		500	{object}	booksdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/expenses [get].
func (h *ExpensesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
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

	expenses, err := h.RecordsService.ListExpenses(ctx, state.Actor.TenantID)
	if err != nil {
		log.Error("failed to list expenses", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list expenses",
		})
		return
	}

	resp := booksdk.ExpenseListResponse{Expenses: make([]booksdk.ExpenseResponse, 0, len(expenses))}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, expenseResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func expenseResponse(e domain.Expense) booksdk.ExpenseResponse {
	return booksdk.ExpenseResponse{
		ID:          e.ID,
		BusinessID:  e.BusinessID,
		Category:    e.Category,
		Description: e.Description,
		AmountCents: e.AmountCents,
		IncurredAt:  e.IncurredAt.Unix(),
	}
}
