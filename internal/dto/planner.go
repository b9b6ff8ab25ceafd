package dto

import (
	"time"

	"github.com/axis-planner/axis-api/internal/models"
)

// PlanResponse is the schedule payload returned to clients.
type PlanResponse struct {
	GeneratedAt time.Time               `json:"generatedAt"`
	HorizonDays int                     `json:"horizonDays"`
	Blocks      []models.ScheduledBlock `json:"blocks"`
	FixedBlocks []models.FixedBlock     `json:"fixedBlocks"`
	Placements  []models.TaskPlacement  `json:"placements"`
}

// PlanFromModel converts the internal plan to its response shape.
func PlanFromModel(plan models.Plan) PlanResponse {
	return PlanResponse{
		GeneratedAt: plan.GeneratedAt,
		HorizonDays: plan.HorizonDays,
		Blocks:      plan.Blocks,
		FixedBlocks: plan.FixedBlocks,
		Placements:  plan.Placements,
	}
}
