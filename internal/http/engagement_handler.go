package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightforge/internal/domain"
	"brightforge/internal/service"
)

// EngagementHandler mantiene dependencias para endpoints de tracking.
type EngagementHandler struct {
	logger  *zap.Logger
	engServ *service.EngagementService
}

// NewEngagementHandler crea una instancia de EngagementHandler con dependencias necesarias.
func NewEngagementHandler(logger *zap.Logger, engServ *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		logger:  logger,
		engServ: engServ,
	}
}

// TrackView maneja POST /track/package-view.
func (h *EngagementHandler) TrackView(c *gin.Context) {
	var req struct {
		UserID       string     `json:"user_id"`
		SessionID    string     `json:"session_id"`
		PackageName  string     `json:"package_name" binding:"required"`
		PackageType  string     `json:"package_type" binding:"required"`
		ViewDuration int        `json:"view_duration"`
		PageURL      string     `json:"page_url"`
		ViewCount    int        `json:"view_count"`
		ViewedAt     *time.Time `json:"viewed_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid track request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	event := domain.PackageViewEvent{
		UserID:       req.UserID,
		SessionID:    req.SessionID,
		PackageName:  req.PackageName,
		PackageType:  req.PackageType,
		ViewDuration: req.ViewDuration,
		PageURL:      req.PageURL,
		ViewCount:    req.ViewCount,
	}
	if req.ViewedAt != nil {
		event.ViewedAt = req.ViewedAt.UTC()
	}

	stored, err := h.engServ.TrackView(c.Request.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrViewerMissing), errors.Is(err, service.ErrPackageMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("track view failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not track view"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"event_id": stored.ID})
}

// GetSummary maneja GET /engagement/user/:userID.
func (h *EngagementHandler) GetSummary(c *gin.Context) {
	summary, err := h.engServ.Summary(c.Request.Context(), c.Param("userID"))
	h.writeSummary(c, summary, err)
}

// GetSessionSummary maneja GET /engagement/session/:sessionID.
func (h *EngagementHandler) GetSessionSummary(c *gin.Context) {
	summary, err := h.engServ.SummaryBySession(c.Request.Context(), c.Param("sessionID"))
	h.writeSummary(c, summary, err)
}

func (h *EngagementHandler) writeSummary(c *gin.Context, summary domain.EngagementSummary, err error) {
	if err != nil {
		if errors.Is(err, service.ErrNoEngagement) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no engagement recorded"})
			return
		}
		h.logger.Error("engagement summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load engagement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"engagement": summary})
}
