package http

import (
	"net/http"

	"github.com/eazybooks/eazybooks/internal/books/access"
	"github.com/eazybooks/eazybooks/internal/books/service"
	"github.com/eazybooks/eazybooks/pkg/booksdk"
	"github.com/eazybooks/eazybooks/pkg/httpx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

type ReportsHandler struct {
	RecordsService *service.RecordsService
}

// ServeHTTP godoc
//
//	@Summary		Report Summary Endpoint
//	@Description	Roll up the tenant's invoices and expenses. The basic summary requires the basic
//	@Description	reporting feature; ?detail=full adds per-status and per-category breakdowns and
//	@Description	requires the advanced reporting feature (premium tier).
//	@Tags			Records
//	@Produce		json
//	@Param			detail	query		string							false	"Set to 'full' for breakdowns"
//	@Success		200		{object}	booksdk.ReportSummaryResponse	"invoiced_cents, expensed_cents, net_cents"
//	@Failure		401		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	booksdk.DenialResponse			"error, reason, required_tier"
//	@Failure		409		{object}	booksdk.DenialResponse			"error, reason"
//	@Failure		500		{object}	booksdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/reports/summary [get].
func (h *ReportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	full := r.URL.Query().Get("detail") == "full"
	if full {
		// The route guard only covered the basic report; the breakdown is a
		// separate, higher-tier feature.
		decision := access.Guard(state.Actor, access.FeatureAdvancedReporting)
		if !decision.Allowed {
			log.Info("feature access blocked",
				"feature", access.FeatureAdvancedReporting,
				"reason", string(decision.Reason),
				"user_id", state.User.ID,
			)
			writeDenial(w, decision)
			return
		}
	}

	summary, err := h.RecordsService.Summarize(ctx, state.Actor.TenantID, full)
	if err != nil {
		log.Error("failed to summarize records", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, booksdk.ErrorResponse{
			Error:            booksdk.ErrorCodeServerError,
			ErrorDescription: "Failed to build report",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, booksdk.ReportSummaryResponse{
		InvoicedCents:      summary.InvoicedCents,
		ExpensedCents:      summary.ExpensedCents,
		NetCents:           summary.NetCents,
		InvoicesByStatus:   summary.InvoicesByStatus,
		ExpensesByCategory: summary.ExpensesByCategory,
	})
}
