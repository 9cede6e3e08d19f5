package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
)

type invitesRepo struct {
	q querier
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invites (id, token_hash, email, business_id, invited_by, role, employee_role, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.Email, inv.BusinessID, inv.InvitedBy,
		inv.Role, inv.EmployeeRole, inv.ExpiresAt, inv.CreatedAt)
	return err
}

// ConsumeInviteByTokenHash deletes and returns the live invite in a single
// statement. Two racing acceptances hit the same conditional DELETE and only
// one row exists, so exactly one caller gets the invite back; the other sees
// ErrNotFound.
func (r *invitesRepo) ConsumeInviteByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx, `
		DELETE FROM invites
		WHERE token_hash = ? AND expires_at > ?
		RETURNING id, token_hash, email, business_id, invited_by, role, employee_role, expires_at, created_at`,
		hash, now)
	return scanInvite(row)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, token_hash, email, business_id, invited_by, role, employee_role, expires_at, created_at
		FROM invites WHERE token_hash = ?`, hash)
	return scanInvite(row)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM invites WHERE expires_at <= ?`, now)
	return err
}

func scanInvite(row *sql.Row) (domain.Invite, error) {
	var inv domain.Invite
	err := row.Scan(&inv.ID, &inv.TokenHash, &inv.Email, &inv.BusinessID,
		&inv.InvitedBy, &inv.Role, &inv.EmployeeRole, &inv.ExpiresAt, &inv.CreatedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}
