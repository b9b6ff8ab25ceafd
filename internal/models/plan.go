package models

import "time"

// CommitmentCategory classifies a fixed, immovable obligation.
type CommitmentCategory string

const (
	CommitmentRoutine  CommitmentCategory = "routine"
	CommitmentBreak    CommitmentCategory = "break"
	CommitmentWeekend  CommitmentCategory = "weekend-activity"
	CommitmentPersonal CommitmentCategory = "personal-time"
)

// ScheduledBlock is one committed work session for a task.
type ScheduledBlock struct {
	ID       string    `db:"id" json:"id"`
	UserID   string    `db:"user_id" json:"user_id"`
	TaskID   string    `db:"task_id" json:"task_id"`
	TaskName string    `db:"task_name" json:"task_name"`
	Category string    `db:"category" json:"category"`
	StartAt  time.Time `db:"start_at" json:"start_at"`
	EndAt    time.Time `db:"end_at" json:"end_at"`
}

// FixedBlock is a merged, displayable interval derived from fixed commitments.
type FixedBlock struct {
	Label    string             `json:"label"`
	Category CommitmentCategory `json:"category"`
	StartAt  time.Time          `json:"start_at"`
	EndAt    time.Time          `json:"end_at"`
}

// PlacementStatus reports how completely a task was placed.
type PlacementStatus string

const (
	PlacementScheduled  PlacementStatus = "scheduled"
	PlacementPartial    PlacementStatus = "partial"
	PlacementInfeasible PlacementStatus = "infeasible"
)

// TaskPlacement is the per-task diagnostic emitted with every plan.
type TaskPlacement struct {
	TaskID          string          `json:"task_id"`
	TaskName        string          `json:"task_name"`
	Status          PlacementStatus `json:"status"`
	ScheduledChunks int             `json:"scheduled_chunks"`
	RequiredChunks  int             `json:"required_chunks"`
}

// Plan is the full output of one planner run over the horizon.
type Plan struct {
	UserID      string           `json:"user_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	HorizonDays int              `json:"horizon_days"`
	Blocks      []ScheduledBlock `json:"blocks"`
	FixedBlocks []FixedBlock     `json:"fixed_blocks"`
	Placements  []TaskPlacement  `json:"placements"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
