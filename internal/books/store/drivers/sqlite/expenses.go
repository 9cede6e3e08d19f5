package sqlite

import (
	"context"

	"github.com/eazybooks/eazybooks/internal/books/domain"
)

type expensesRepo struct {
	q querier
}

func (r *expensesRepo) CreateExpense(ctx context.Context, e domain.Expense) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO expenses (id, business_id, category, description, amount_cents, incurred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.BusinessID, e.Category, e.Description, e.AmountCents, e.IncurredAt, e.CreatedAt)
	return err
}

func (r *expensesRepo) ListExpensesByBusiness(ctx context.Context, businessID string) ([]domain.Expense, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, business_id, category, description, amount_cents, incurred_at, created_at
		FROM expenses WHERE business_id = ?
		ORDER BY incurred_at DESC, id DESC`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.BusinessID, &e.Category, &e.Description,
			&e.AmountCents, &e.IncurredAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expensesRepo) SumExpensesByBusiness(ctx context.Context, businessID string) (int64, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM expenses WHERE business_id = ?`, businessID)
	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *expensesRepo) SumExpensesByCategory(ctx context.Context, businessID string) (map[string]int64, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT category, COALESCE(SUM(amount_cents), 0)
		FROM expenses WHERE business_id = ?
		GROUP BY category`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			category string
			total    int64
		)
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		out[category] = total
	}
	return out, rows.Err()
}
