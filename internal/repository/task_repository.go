package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/axis-planner/axis-api/internal/models"
)

// TaskRepository persists tasks.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs the repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, name, priority, category, deadline_date, deadline_time, duration_hours, needs_computer, completed, created_at, updated_at`

// ListByUser returns every task for the user ordered by creation time.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE user_id = $1 ORDER BY created_at`, taskColumns)
	tasks := []models.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// List returns tasks matching the filter with total count for pagination.
func (r *TaskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, int, error) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{filter.UserID}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		conditions = append(conditions, fmt.Sprintf("completed = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY deadline_date, deadline_time LIMIT $%d OFFSET $%d`,
		taskColumns, where, len(args)-1, len(args))

	tasks := []models.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

// FindByID loads a single task.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)
	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		return nil, err
	}
	return &task, nil
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	const query = `INSERT INTO tasks (id, user_id, name, priority, category, deadline_date, deadline_time, duration_hours, needs_computer, completed, created_at, updated_at)
		VALUES (:id, :user_id, :name, :priority, :category, :deadline_date, :deadline_time, :duration_hours, :needs_computer, :completed, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update rewrites the mutable task fields.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().UTC()

	const query = `UPDATE tasks SET name = :name, priority = :priority, category = :category,
		deadline_date = :deadline_date, deadline_time = :deadline_time, duration_hours = :duration_hours,
		needs_computer = :needs_computer, completed = :completed, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id`
	result, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MarkCompleted flips the completion flag.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id, userID string) error {
	const query = `UPDATE tasks SET completed = TRUE, updated_at = $1 WHERE id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id, userID)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
