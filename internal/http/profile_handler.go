package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightforge/internal/domain"
	"brightforge/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfil de negocio.
type ProfileHandler struct {
	logger  *zap.Logger
	recServ *service.RecommendationService
}

// NewProfileHandler crea una instancia de ProfileHandler con dependencias necesarias.
func NewProfileHandler(logger *zap.Logger, recServ *service.RecommendationService) *ProfileHandler {
	return &ProfileHandler{
		logger:  logger,
		recServ: recServ,
	}
}

// UpdateProfile maneja PUT /profile/:userID.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id required"})
		return
	}

	var req struct {
		PreferredBudget string `json:"preferred_budget"`
		CompanySize     string `json:"company_size"`
		Industry        string `json:"industry"`
		ProjectTimeline string `json:"project_timeline"`
		BusinessGoals   string `json:"business_goals"`
		FirstName       string `json:"first_name"`
		Company         string `json:"company"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.recServ.UpdateProfile(c.Request.Context(), domain.BusinessProfile{
		UserID:          userID,
		PreferredBudget: req.PreferredBudget,
		CompanySize:     req.CompanySize,
		Industry:        req.Industry,
		ProjectTimeline: req.ProjectTimeline,
		BusinessGoals:   req.BusinessGoals,
		FirstName:       req.FirstName,
		Company:         req.Company,
	})
	if err != nil {
		h.logger.Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendation": result})
}

// GetRecommendation maneja GET /profile/:userID/recommendation.
func (h *ProfileHandler) GetRecommendation(c *gin.Context) {
	userID := c.Param("userID")

	result, err := h.recServ.GetRecommendation(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("get recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load recommendation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendation": result})
}
