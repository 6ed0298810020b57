package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brightforge/internal/domain"
	"brightforge/internal/repository"
)

var (
	ErrViewerMissing  = errors.New("view event needs exactly one of user id or session id")
	ErrPackageMissing = errors.New("view event needs package name and type")
	ErrNoEngagement   = errors.New("no package views recorded")
)

// EngagementService registra vistas de paquetes y responde consultas de
// engagement sobre el log almacenado.
type EngagementService struct {
	logger *zap.Logger
	views  repository.ViewEventRepository
}

func NewEngagementService(logger *zap.Logger, views repository.ViewEventRepository) *EngagementService {
	return &EngagementService{
		logger: logger,
		views:  views,
	}
}

// TrackView valida y persiste un ping de vista de paquete.
func (s *EngagementService) TrackView(ctx context.Context, event domain.PackageViewEvent) (domain.PackageViewEvent, error) {
	hasUser := event.UserID != ""
	hasSession := event.SessionID != ""
	if hasUser == hasSession {
		return domain.PackageViewEvent{}, ErrViewerMissing
	}
	if event.PackageName == "" || event.PackageType == "" {
		return domain.PackageViewEvent{}, ErrPackageMissing
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.ViewedAt.IsZero() {
		event.ViewedAt = time.Now().UTC()
	}
	event.ViewCount = event.Views()
	event.LastReminderSent = nil

	if err := s.views.Append(ctx, event); err != nil {
		return domain.PackageViewEvent{}, fmt.Errorf("append view: %w", err)
	}
	return event, nil
}

// MostEngaged devuelve el evento crudo más reciente del paquete con mayor
// engagement del usuario, o nil si no registró vistas.
func (s *EngagementService) MostEngaged(ctx context.Context, userID string) (*domain.PackageViewEvent, error) {
	events, err := s.views.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list views for user %s: %w", userID, err)
	}
	return MostEngagedPackage(events), nil
}

// Summary arma la vista agregada del paquete más visitado para la capa HTTP.
func (s *EngagementService) Summary(ctx context.Context, userID string) (domain.EngagementSummary, error) {
	events, err := s.views.ListByUser(ctx, userID)
	if err != nil {
		return domain.EngagementSummary{}, fmt.Errorf("list views for user %s: %w", userID, err)
	}
	summary, ok := SummarizeEngagement(events)
	if !ok {
		return domain.EngagementSummary{}, ErrNoEngagement
	}
	return summary, nil
}

// SummaryBySession es la variante para visitantes anónimos identificados
// solo por sesión.
func (s *EngagementService) SummaryBySession(ctx context.Context, sessionID string) (domain.EngagementSummary, error) {
	events, err := s.views.ListBySession(ctx, sessionID)
	if err != nil {
		return domain.EngagementSummary{}, fmt.Errorf("list views for session %s: %w", sessionID, err)
	}
	summary, ok := SummarizeEngagement(events)
	if !ok {
		return domain.EngagementSummary{}, ErrNoEngagement
	}
	return summary, nil
}
