package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/models"
)

func taskWith(id string, priority models.PriorityClass, deadline time.Time, completed bool) models.Task {
	return models.Task{
		ID:           id,
		Name:         id,
		Priority:     priority,
		DeadlineDate: deadline,
		Completed:    completed,
	}
}

func TestRankTasksFiltersAndOrders(t *testing.T) {
	d1 := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	ranked := rankTasks([]models.Task{
		taskWith("low-late", models.PriorityNeither, d2, false),
		taskWith("done", models.PriorityUrgentImportant, d1, true),
		taskWith("high-late", models.PriorityUrgentImportant, d2, false),
		taskWith("high-early", models.PriorityUrgentImportant, d1, false),
		taskWith("mid", models.PriorityImportantNotUrgent, d1, false),
	})

	require.Len(t, ranked, 4)
	assert.Equal(t, "high-early", ranked[0].ID)
	assert.Equal(t, "high-late", ranked[1].ID)
	assert.Equal(t, "mid", ranked[2].ID)
	assert.Equal(t, "low-late", ranked[3].ID)
}

func TestRankTasksStableForEqualTasks(t *testing.T) {
	d := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	ranked := rankTasks([]models.Task{
		taskWith("first", models.PriorityNeither, d, false),
		taskWith("second", models.PriorityNeither, d, false),
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
}

func TestParseStudyMethod(t *testing.T) {
	override := parseStudyMethod("I do 50 minute sessions with 10 minute breaks")
	require.NotNil(t, override.ChunkMinutes)
	require.NotNil(t, override.BreakMinutes)
	assert.Equal(t, 50, *override.ChunkMinutes)
	assert.Equal(t, 10, *override.BreakMinutes)
}

func TestParseStudyMethodIgnoresOutOfRange(t *testing.T) {
	override := parseStudyMethod("10 min sprints")
	assert.Nil(t, override.ChunkMinutes, "chunks under 15 minutes are ignored")

	override = parseStudyMethod("180 minutes of deep work")
	assert.Nil(t, override.ChunkMinutes, "chunks over 120 minutes are ignored")

	override = parseStudyMethod("")
	assert.Nil(t, override.ChunkMinutes)
	assert.Nil(t, override.BreakMinutes)
}

func TestSelectStrategyWorkStyles(t *testing.T) {
	plan := selectStrategy(plannerProfile{WorkStyle: models.WorkStyleShortBursts})
	assert.Equal(t, 25, plan.ChunkMinutes)
	assert.Equal(t, 5, plan.BreakMinutes)

	plan = selectStrategy(plannerProfile{WorkStyle: models.WorkStyleLongSessions})
	assert.Equal(t, 60, plan.ChunkMinutes)
	assert.Equal(t, 10, plan.BreakMinutes)

	plan = selectStrategy(plannerProfile{WorkStyle: models.WorkStyleMixed})
	assert.Equal(t, 30, plan.ChunkMinutes)
	assert.Equal(t, 0, plan.BreakMinutes)
}

func TestSelectStrategyStudyMethodOverridesWorkStyle(t *testing.T) {
	plan := selectStrategy(plannerProfile{
		WorkStyle:   models.WorkStyleLongSessions,
		StudyMethod: "pomodoro, 25 minute rounds with 5 minute breaks",
	})
	assert.Equal(t, 25, plan.ChunkMinutes)
	assert.Equal(t, 5, plan.BreakMinutes)
}

func TestSelectStrategyTroubleFinishingCaps(t *testing.T) {
	plan := selectStrategy(plannerProfile{
		WorkStyle:        models.WorkStyleLongSessions,
		TroubleFinishing: true,
	})
	assert.Equal(t, 25, plan.ChunkMinutes)
	assert.Equal(t, 10, plan.BreakMinutes, "existing longer break survives the floor")

	plan = selectStrategy(plannerProfile{
		WorkStyle:        models.WorkStyleMixed,
		TroubleFinishing: true,
	})
	assert.Equal(t, 5, plan.BreakMinutes, "zero break is raised to five minutes")
}

func TestSelectStrategyProcrastinationMapping(t *testing.T) {
	cases := map[models.ProcrastinationType]dayStrategy{
		models.ProcrastinationDeadlineDriven:   strategyDeadlineProximate,
		models.ProcrastinationPerfectionist:    strategyDistributed,
		models.ProcrastinationOverwhelmed:      strategyDistributed,
		models.ProcrastinationAvoidant:         strategyDistributed,
		models.ProcrastinationLackOfMotivation: strategyIntensive,
		models.ProcrastinationDistractionProne: strategyIntensive,
	}
	for pType, want := range cases {
		plan := selectStrategy(plannerProfile{Procrastinates: true, ProcrastinationType: pType})
		assert.Equal(t, want, plan.Strategy, string(pType))
	}
}

func TestSelectStrategyIgnoresTypeWithoutProcrastinating(t *testing.T) {
	plan := selectStrategy(plannerProfile{ProcrastinationType: models.ProcrastinationDeadlineDriven})
	assert.Equal(t, strategyBalanced, plan.Strategy)
}
