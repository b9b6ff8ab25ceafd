package dto

import "github.com/axis-planner/axis-api/internal/models"

// CreateTaskRequest is the payload for adding a task.
type CreateTaskRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Priority      string  `json:"priority" validate:"required,oneof=urgent-important urgent-not-important important-not-urgent neither"`
	Category      string  `json:"category" validate:"max=100"`
	DeadlineDate  string  `json:"deadlineDate" validate:"required,datetime=2006-01-02"`
	DeadlineTime  string  `json:"deadlineTime" validate:"omitempty,datetime=15:04"`
	DurationHours float64 `json:"durationHours" validate:"gte=0"`
	NeedsComputer bool    `json:"needsComputer"`
}

// UpdateTaskRequest mirrors the create payload plus the completion flag.
type UpdateTaskRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Priority      string  `json:"priority" validate:"required,oneof=urgent-important urgent-not-important important-not-urgent neither"`
	Category      string  `json:"category" validate:"max=100"`
	DeadlineDate  string  `json:"deadlineDate" validate:"required,datetime=2006-01-02"`
	DeadlineTime  string  `json:"deadlineTime" validate:"omitempty,datetime=15:04"`
	DurationHours float64 `json:"durationHours" validate:"gte=0"`
	NeedsComputer bool    `json:"needsComputer"`
	Completed     bool    `json:"completed"`
}

// TaskListQuery captures task listing filters.
type TaskListQuery struct {
	Completed *bool
	Category  string
	Page      int
	PageSize  int
}

// TaskListResponse wraps a page of tasks.
type TaskListResponse struct {
	Tasks      []models.Task     `json:"tasks"`
	Pagination models.Pagination `json:"pagination"`
}
