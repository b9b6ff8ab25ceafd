package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/axis-planner/axis-api/internal/models"
)

// PlanRepository persists the scheduled blocks of the latest computed plan.
// Every rebuild replaces the user's blocks wholesale; the engine itself owns
// no durability.
type PlanRepository struct {
	db *sqlx.DB
}

// NewPlanRepository constructs the repository.
func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// ReplaceForUser swaps the user's stored blocks for the given set in one
// transaction.
func (r *PlanRepository) ReplaceForUser(ctx context.Context, userID string, blocks []models.ScheduledBlock) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin plan replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM scheduled_blocks WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear plan blocks: %w", err)
	}

	const query = `INSERT INTO scheduled_blocks (id, user_id, task_id, task_name, category, start_at, end_at)
		VALUES (:id, :user_id, :task_id, :task_name, :category, :start_at, :end_at)`
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.NewString()
		}
		blocks[i].UserID = userID
		if _, err = tx.NamedExecContext(ctx, query, blocks[i]); err != nil {
			return fmt.Errorf("insert plan block: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit plan replace: %w", err)
	}
	return nil
}

// ListByUser returns the stored blocks ordered by start time.
func (r *PlanRepository) ListByUser(ctx context.Context, userID string) ([]models.ScheduledBlock, error) {
	const query = `SELECT id, user_id, task_id, task_name, category, start_at, end_at
		FROM scheduled_blocks WHERE user_id = $1 ORDER BY start_at`
	blocks := []models.ScheduledBlock{}
	if err := r.db.SelectContext(ctx, &blocks, query, userID); err != nil {
		return nil, fmt.Errorf("list plan blocks: %w", err)
	}
	return blocks, nil
}
