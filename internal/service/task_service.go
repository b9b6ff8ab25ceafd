package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
)

type taskRepository interface {
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, int, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	MarkCompleted(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id, userID string) error
}

// TaskService handles task CRUD and notifies the planner after mutations.
type TaskService struct {
	repo      taskRepository
	validator *validator.Validate
	logger    *zap.Logger
	onChange  func(userID string)
}

// NewTaskService constructs the service. onChange fires after any mutation
// so the owning plan can be recomputed; nil disables notification.
func NewTaskService(repo taskRepository, validate *validator.Validate, logger *zap.Logger, onChange func(userID string)) *TaskService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{repo: repo, validator: validate, logger: logger, onChange: onChange}
}

// List returns the user's tasks with pagination.
func (s *TaskService) List(ctx context.Context, userID string, query dto.TaskListQuery) ([]models.Task, *models.Pagination, error) {
	filter := models.TaskFilter{
		UserID:    userID,
		Completed: query.Completed,
		Category:  query.Category,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	tasks, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return tasks, pagination, nil
}

// Create validates and stores a new task.
func (s *TaskService) Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	deadline, err := time.Parse("2006-01-02", req.DeadlineDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid deadline date")
	}
	task := &models.Task{
		UserID:        userID,
		Name:          req.Name,
		Priority:      models.PriorityClass(req.Priority),
		Category:      req.Category,
		DeadlineDate:  deadline,
		DeadlineTime:  req.DeadlineTime,
		DurationHours: req.DurationHours,
		NeedsComputer: req.NeedsComputer,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create task")
	}
	s.notify(userID)
	return task, nil
}

// Update validates and replaces an existing task owned by the user.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	existing, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "task not found")
	}
	if existing.UserID != userID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "task belongs to another user")
	}
	deadline, err := time.Parse("2006-01-02", req.DeadlineDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid deadline date")
	}
	existing.Name = req.Name
	existing.Priority = models.PriorityClass(req.Priority)
	existing.Category = req.Category
	existing.DeadlineDate = deadline
	existing.DeadlineTime = req.DeadlineTime
	existing.DurationHours = req.DurationHours
	existing.NeedsComputer = req.NeedsComputer
	existing.Completed = req.Completed
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFoundOr(err, "task not found")
	}
	s.notify(userID)
	return existing, nil
}

// Complete marks a task done. Completed tasks drop out of the next plan.
func (s *TaskService) Complete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.MarkCompleted(ctx, taskID, userID); err != nil {
		return notFoundOr(err, "task not found")
	}
	s.notify(userID)
	return nil
}

// Delete removes a task owned by the user.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.Delete(ctx, taskID, userID); err != nil {
		return notFoundOr(err, "task not found")
	}
	s.notify(userID)
	return nil
}

func (s *TaskService) notify(userID string) {
	if s.onChange != nil {
		s.onChange(userID)
	}
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}
