package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/middleware"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
	"github.com/axis-planner/axis-api/pkg/export"
	"github.com/axis-planner/axis-api/pkg/response"
)

type plannerService interface {
	Current(ctx context.Context, userID string) (*models.Plan, bool, error)
	Rebuild(ctx context.Context, userID string) (*models.Plan, error)
}

type agendaExporter interface {
	Render(agenda export.Agenda) ([]byte, error)
}

// PlannerHandler exposes plan computation and export endpoints.
type PlannerHandler struct {
	service   plannerService
	exporters map[string]agendaExporter
}

// NewPlannerHandler constructs the handler.
func NewPlannerHandler(svc plannerService) *PlannerHandler {
	return &PlannerHandler{
		service: svc,
		exporters: map[string]agendaExporter{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
	}
}

// Current godoc
// @Summary Get the current schedule, computing it when stale
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /plan [get]
func (h *PlannerHandler) Current(c *gin.Context) {
	plan, fromCache, err := h.service.Current(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, fromCache)
	response.JSON(c, http.StatusOK, dto.PlanFromModel(*plan), nil, middleware.ExtractMeta(c))
}

// Rebalance godoc
// @Summary Force a full schedule recomputation
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /plan/rebalance [post]
func (h *PlannerHandler) Rebalance(c *gin.Context) {
	plan, err := h.service.Rebuild(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.PlanFromModel(*plan), nil)
}

// Export godoc
// @Summary Export the schedule as CSV or PDF
// @Tags Planner
// @Produce application/octet-stream
// @Param format query string true "Export format" Enums(csv, pdf)
// @Success 200 {file} binary
// @Router /plan/export [get]
func (h *PlannerHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	exporter, ok := h.exporters[format]
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unsupported export format"))
		return
	}
	plan, _, err := h.service.Current(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := exporter.Render(export.FromPlan(*plan))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export"))
		return
	}
	filename := fmt.Sprintf("schedule-%s.%s", time.Now().UTC().Format("20060102"), format)
	contentType := "text/csv"
	if format == "pdf" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
