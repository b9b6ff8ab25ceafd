package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/middleware"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
	"github.com/axis-planner/axis-api/pkg/response"
)

type taskService interface {
	List(ctx context.Context, userID string, query dto.TaskListQuery) ([]models.Task, *models.Pagination, error)
	Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (*models.Task, error)
	Complete(ctx context.Context, userID, taskID string) error
	Delete(ctx context.Context, userID, taskID string) error
}

// TaskHandler exposes task CRUD endpoints.
type TaskHandler struct {
	service taskService
}

// NewTaskHandler constructs the handler.
func NewTaskHandler(svc taskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// List godoc
// @Summary List tasks for the current user
// @Tags Tasks
// @Produce json
// @Param completed query bool false "Filter by completion state"
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	query := dto.TaskListQuery{
		Category: c.Query("category"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 50),
	}
	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "completed must be a boolean"))
			return
		}
		query.Completed = &completed
	}
	tasks, pagination, err := h.service.List(c.Request.Context(), middleware.UserID(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, pagination)
}

// Create godoc
// @Summary Add a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body dto.CreateTaskRequest true "Task payload"
// @Success 201 {object} response.Envelope
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}
	task, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

// Update godoc
// @Summary Replace a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param payload body dto.UpdateTaskRequest true "Task payload"
// @Success 200 {object} response.Envelope
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}
	task, err := h.service.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, task, nil)
}

// Complete godoc
// @Summary Mark a task as completed
// @Tags Tasks
// @Param id path string true "Task ID"
// @Success 204
// @Router /tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	if err := h.service.Complete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a task
// @Tags Tasks
// @Param id path string true "Task ID"
// @Success 204
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
