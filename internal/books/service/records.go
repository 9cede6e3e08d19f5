package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
	"github.com/eazybooks/eazybooks/internal/books/store"
	"github.com/eazybooks/eazybooks/pkg/idx"
	"github.com/eazybooks/eazybooks/pkg/slogx"
)

var ErrInvalidRecordRequest = errors.New("invalid record request")

// RecordsService owns tenant-scoped invoices and expenses. Every operation
// takes the tenant id resolved by the caller's guard; nothing here ever
// queries across businesses.
type RecordsService struct {
	Store store.Store
}

// CreateInvoice writes a new invoice into the tenant's books.
func (s *RecordsService) CreateInvoice(
	ctx context.Context,
	businessID string,
	customerName, number string,
	amountCents int64,
	currency, status string,
	issuedAt time.Time,
	dueAt *time.Time,
) (domain.Invoice, error) {
	log := slogx.FromContext(ctx)

	customerName = strings.TrimSpace(customerName)
	if businessID == "" || customerName == "" || amountCents <= 0 {
		return domain.Invoice{}, ErrInvalidRecordRequest
	}
	switch status {
	case "":
		status = domain.InvoiceStatusDraft
	case domain.InvoiceStatusDraft, domain.InvoiceStatusSent, domain.InvoiceStatusPaid:
	default:
		return domain.Invoice{}, ErrInvalidRecordRequest
	}
	if currency == "" {
		currency = "AUD"
	}

	now := time.Now().UTC()
	if issuedAt.IsZero() {
		issuedAt = now
	}

	inv := domain.Invoice{
		ID:           idx.New().String(),
		BusinessID:   businessID,
		CustomerName: customerName,
		Number:       number,
		AmountCents:  amountCents,
		Currency:     currency,
		Status:       status,
		IssuedAt:     issuedAt,
		DueAt:        dueAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Invoices().CreateInvoice(ctx, inv); err != nil {
		log.Error("failed to create invoice", slog.Any("error", err))
		return domain.Invoice{}, err
	}

	log.Debug("invoice created",
		slog.String("invoice_id", inv.ID),
		slog.String("business_id", businessID),
		slog.Int64("amount_cents", amountCents),
	)
	return inv, nil
}

// ListInvoices returns the tenant's invoices, newest first.
func (s *RecordsService) ListInvoices(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	if businessID == "" {
		return nil, ErrInvalidRecordRequest
	}
	return s.Store.Invoices().ListInvoicesByBusiness(ctx, businessID)
}

// CreateExpense writes a new expense into the tenant's books.
func (s *RecordsService) CreateExpense(
	ctx context.Context,
	businessID string,
	category, description string,
	amountCents int64,
	incurredAt time.Time,
) (domain.Expense, error) {
	log := slogx.FromContext(ctx)

	category = strings.TrimSpace(category)
	if businessID == "" || category == "" || amountCents <= 0 {
		return domain.Expense{}, ErrInvalidRecordRequest
	}

	now := time.Now().UTC()
	if incurredAt.IsZero() {
		incurredAt = now
	}

	e := domain.Expense{
		ID:          idx.New().String(),
		BusinessID:  businessID,
		Category:    category,
		Description: description,
		AmountCents: amountCents,
		IncurredAt:  incurredAt,
		CreatedAt:   now,
	}
	if err := s.Store.Expenses().CreateExpense(ctx, e); err != nil {
		log.Error("failed to create expense", slog.Any("error", err))
		return domain.Expense{}, err
	}

	log.Debug("expense created",
		slog.String("expense_id", e.ID),
		slog.String("business_id", businessID),
		slog.Int64("amount_cents", amountCents),
	)
	return e, nil
}

// ListExpenses returns the tenant's expenses, newest first.
func (s *RecordsService) ListExpenses(ctx context.Context, businessID string) ([]domain.Expense, error) {
	if businessID == "" {
		return nil, ErrInvalidRecordRequest
	}
	return s.Store.Expenses().ListExpensesByBusiness(ctx, businessID)
}

// ReportSummary is the rollup of a tenant's books. The breakdown maps are
// only populated for the full (advanced) report.
type ReportSummary struct {
	InvoicedCents      int64
	ExpensedCents      int64
	NetCents           int64
	InvoicesByStatus   map[string]int64
	ExpensesByCategory map[string]int64
}

// Summarize totals the tenant's invoices and expenses. When full is set it
// also includes the per-status and per-category breakdowns.
func (s *RecordsService) Summarize(ctx context.Context, businessID string, full bool) (ReportSummary, error) {
	log := slogx.FromContext(ctx)

	if businessID == "" {
		return ReportSummary{}, ErrInvalidRecordRequest
	}

	invoiced, err := s.Store.Invoices().SumInvoicesByBusiness(ctx, businessID)
	if err != nil {
		log.Error("failed to sum invoices", slog.Any("error", err))
		return ReportSummary{}, err
	}
	expensed, err := s.Store.Expenses().SumExpensesByBusiness(ctx, businessID)
	if err != nil {
		log.Error("failed to sum expenses", slog.Any("error", err))
		return ReportSummary{}, err
	}

	out := ReportSummary{
		InvoicedCents: invoiced,
		ExpensedCents: expensed,
		NetCents:      invoiced - expensed,
	}
	if !full {
		return out, nil
	}

	out.InvoicesByStatus, err = s.Store.Invoices().SumInvoicesByStatus(ctx, businessID)
	if err != nil {
		log.Error("failed to break down invoices", slog.Any("error", err))
		return ReportSummary{}, err
	}
	out.ExpensesByCategory, err = s.Store.Expenses().SumExpensesByCategory(ctx, businessID)
	if err != nil {
		log.Error("failed to break down expenses", slog.Any("error", err))
		return ReportSummary{}, err
	}
	return out, nil
}
