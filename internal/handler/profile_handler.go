package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/middleware"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
	"github.com/axis-planner/axis-api/pkg/response"
)

type profileService interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.UserProfile, error)
}

// ProfileHandler exposes planning profile endpoints.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// Get godoc
// @Summary Get the current user's planning profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.service.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// Update godoc
// @Summary Replace the current user's planning profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body dto.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}
	profile, err := h.service.Update(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}
