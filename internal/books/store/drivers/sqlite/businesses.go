package sqlite

import (
	"context"
	"database/sql"

	"github.com/eazybooks/eazybooks/internal/books/domain"
)

type businessesRepo struct {
	q querier
}

func (r *businessesRepo) GetBusinessByID(ctx context.Context, id string) (domain.Business, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, owner_id, name, legal_name, contact_email, currency, created_at, updated_at
		FROM businesses WHERE id = ?`, id)
	return scanBusiness(row)
}

func (r *businessesRepo) GetBusinessByOwner(ctx context.Context, ownerID string) (domain.Business, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, owner_id, name, legal_name, contact_email, currency, created_at, updated_at
		FROM businesses WHERE owner_id = ?`, ownerID)
	return scanBusiness(row)
}

func (r *businessesRepo) CreateBusiness(ctx context.Context, b domain.Business) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO businesses (id, owner_id, name, legal_name, contact_email, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.OwnerID, b.Name, b.LegalName, b.ContactEmail, b.Currency, b.CreatedAt, b.UpdatedAt)
	return err
}

func scanBusiness(row *sql.Row) (domain.Business, error) {
	var b domain.Business
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.LegalName, &b.ContactEmail,
		&b.Currency, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Business{}, mapNotFound(err)
	}
	return b, nil
}
