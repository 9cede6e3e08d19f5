package sqlite

import (
	"context"
	"database/sql"

	"github.com/eazybooks/eazybooks/internal/books/domain"
)

type invoicesRepo struct {
	q querier
}

func (r *invoicesRepo) CreateInvoice(ctx context.Context, inv domain.Invoice) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invoices (id, business_id, customer_name, number, amount_cents, currency, status, issued_at, due_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.BusinessID, inv.CustomerName, inv.Number, inv.AmountCents,
		inv.Currency, inv.Status, inv.IssuedAt, mapOptionalTime(inv.DueAt),
		inv.CreatedAt, inv.UpdatedAt)
	return err
}

func (r *invoicesRepo) ListInvoicesByBusiness(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, business_id, customer_name, number, amount_cents, currency, status, issued_at, due_at, created_at, updated_at
		FROM invoices WHERE business_id = ?
		ORDER BY issued_at DESC, id DESC`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invoice
	for rows.Next() {
		var (
			inv   domain.Invoice
			dueAt sql.NullTime
		)
		if err := rows.Scan(&inv.ID, &inv.BusinessID, &inv.CustomerName, &inv.Number,
			&inv.AmountCents, &inv.Currency, &inv.Status, &inv.IssuedAt, &dueAt,
			&inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		inv.DueAt = mapNullTimePtr(dueAt)
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invoicesRepo) SumInvoicesByBusiness(ctx context.Context, businessID string) (int64, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM invoices WHERE business_id = ?`, businessID)
	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *invoicesRepo) SumInvoicesByStatus(ctx context.Context, businessID string) (map[string]int64, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT status, COALESCE(SUM(amount_cents), 0)
		FROM invoices WHERE business_id = ?
		GROUP BY status`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			total  int64
		)
		if err := rows.Scan(&status, &total); err != nil {
			return nil, err
		}
		out[status] = total
	}
	return out, rows.Err()
}
