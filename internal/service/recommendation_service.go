package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"brightforge/internal/domain"
	"brightforge/internal/repository"
)

var ErrProfileNotFound = errors.New("business profile not found")

// RecommendationService coordina la evaluación de perfiles y la persistencia
// de la recomendación resultante.
type RecommendationService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

func NewRecommendationService(logger *zap.Logger, profiles repository.ProfileRepository) *RecommendationService {
	return &RecommendationService{
		logger:   logger,
		profiles: profiles,
	}
}

// UpdateProfile guarda el perfil junto con su recomendación recalculada y
// devuelve el resultado para la respuesta HTTP.
func (s *RecommendationService) UpdateProfile(ctx context.Context, profile domain.BusinessProfile) (domain.RecommendationResult, error) {
	profile.UpdatedAt = time.Now().UTC()
	result := Recommend(profile)

	if err := s.profiles.SaveWithRecommendation(ctx, profile, result); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("save profile for user %s: %w", profile.UserID, err)
	}

	s.logger.Info("recommendation computed",
		zap.String("user_id", profile.UserID),
		zap.String("package_id", result.PackageID),
		zap.Int("score", result.Score),
	)
	return result, nil
}

// GetRecommendation devuelve la recomendación almacenada de un usuario.
func (s *RecommendationService) GetRecommendation(ctx context.Context, userID string) (domain.RecommendationResult, error) {
	result, err := s.profiles.GetRecommendation(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.RecommendationResult{}, ErrProfileNotFound
		}
		return domain.RecommendationResult{}, err
	}
	return result, nil
}
