package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brightforge/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles de
// negocio y su recomendación vigente.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (domain.BusinessProfile, error)
	SaveWithRecommendation(ctx context.Context, profile domain.BusinessProfile, result domain.RecommendationResult) error
	GetRecommendation(ctx context.Context, userID string) (domain.RecommendationResult, error)
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.BusinessProfile, error) {
	const query = `
		SELECT user_id, preferred_budget, company_size, industry, project_timeline, business_goals, updated_at
		FROM business_profiles
		WHERE user_id = $1
	`
	var p domain.BusinessProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.PreferredBudget,
		&p.CompanySize,
		&p.Industry,
		&p.ProjectTimeline,
		&p.BusinessGoals,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.BusinessProfile{}, ErrNotFound
	}
	return p, err
}

func (r *PgProfileRepository) SaveWithRecommendation(ctx context.Context, profile domain.BusinessProfile, result domain.RecommendationResult) error {
	factors, err := json.Marshal(result.Factors)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO business_profiles (
			user_id, preferred_budget, company_size, industry, project_timeline, business_goals,
			recommended_package, recommendation_score, recommendation_reason, recommendation_factors, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_budget = EXCLUDED.preferred_budget,
			company_size = EXCLUDED.company_size,
			industry = EXCLUDED.industry,
			project_timeline = EXCLUDED.project_timeline,
			business_goals = EXCLUDED.business_goals,
			recommended_package = EXCLUDED.recommended_package,
			recommendation_score = EXCLUDED.recommendation_score,
			recommendation_reason = EXCLUDED.recommendation_reason,
			recommendation_factors = EXCLUDED.recommendation_factors,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		profile.UserID,
		profile.PreferredBudget,
		profile.CompanySize,
		profile.Industry,
		profile.ProjectTimeline,
		profile.BusinessGoals,
		result.PackageID,
		result.Score,
		result.Reason,
		factors,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetRecommendation(ctx context.Context, userID string) (domain.RecommendationResult, error) {
	const query = `
		SELECT recommended_package, recommendation_score, recommendation_reason, recommendation_factors
		FROM business_profiles
		WHERE user_id = $1
	`
	var (
		result  domain.RecommendationResult
		factors []byte
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&result.PackageID,
		&result.Score,
		&result.Reason,
		&factors,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.RecommendationResult{}, ErrNotFound
	}
	if err != nil {
		return domain.RecommendationResult{}, err
	}
	if len(factors) > 0 {
		if err := json.Unmarshal(factors, &result.Factors); err != nil {
			return domain.RecommendationResult{}, err
		}
	}
	return result, nil
}
