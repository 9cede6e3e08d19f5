package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/eazybooks/eazybooks/internal/books/domain"
)

type profilesRepo struct {
	q querier
}

func (r *profilesRepo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, belongs_to_business_id, subscription_tier, onboarding_completed, created_at, updated_at
		FROM profiles WHERE id = ?`, userID)

	var (
		p       domain.Profile
		belongs sql.NullString
		tier    string
	)
	err := row.Scan(&p.ID, &belongs, &tier, &p.OnboardingCompleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.BelongsToBusinessID = mapNullStringPtr(belongs)
	p.SubscriptionTier = domain.Tier(tier)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO profiles (id, belongs_to_business_id, subscription_tier, onboarding_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, mapOptionalString(p.BelongsToBusinessID), string(p.SubscriptionTier),
		p.OnboardingCompleted, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *profilesRepo) UpdateSubscriptionTier(ctx context.Context, userID string, tier domain.Tier) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles SET subscription_tier = ?, updated_at = ? WHERE id = ?`,
		string(tier), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *profilesRepo) UpdateBelongsToBusiness(ctx context.Context, userID string, businessID *string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles SET belongs_to_business_id = ?, updated_at = ? WHERE id = ?`,
		mapOptionalString(businessID), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *profilesRepo) SetOnboardingCompleted(ctx context.Context, userID string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE profiles SET onboarding_completed = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow turns a zero-row UPDATE into ErrNotFound so callers can tell a
// missing profile apart from a silent no-op.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
