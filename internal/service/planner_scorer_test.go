package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/axis-planner/axis-api/internal/models"
)

func scoreAt(t *testing.T, profile plannerProfile, task models.Task, hour int, reviewPreferred bool) float64 {
	t.Helper()
	ctx := scoreContext{task: task, profile: profile, dayIndex: 0, startDay: 0, endDay: 0}
	slotStart := time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC) // Monday
	return scoreSlot(ctx, slotStart, reviewPreferred)
}

func TestScoreProductiveWindowBonus(t *testing.T) {
	profile := plannerProfile{ProductiveWindow: models.WindowMorning}
	high := models.Task{Priority: models.PriorityUrgentImportant}
	low := models.Task{Priority: models.PriorityNeither}

	assert.Equal(t, 15.0, scoreAt(t, profile, high, 10, false), "window plus high-priority stacking")
	assert.Equal(t, 10.0, scoreAt(t, profile, low, 10, false), "window bonus only")
	assert.Equal(t, 0.0, scoreAt(t, profile, high, 14, false), "high priority gets nothing off-window")
	assert.Equal(t, 3.0, scoreAt(t, profile, low, 14, false), "low priority prefers off-peak")
}

func TestScoreWorkStyleWeekendPreference(t *testing.T) {
	monday := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	task := models.Task{Priority: models.PriorityNeither}

	long := scoreContext{task: task, profile: plannerProfile{WorkStyle: models.WorkStyleLongSessions}}
	short := scoreContext{task: task, profile: plannerProfile{WorkStyle: models.WorkStyleShortBursts}}

	assert.Equal(t, scoreSlot(long, monday, false)+2, scoreSlot(long, saturday, false),
		"long sessions gain on weekends")
	assert.Equal(t, scoreSlot(short, saturday, false)+2, scoreSlot(short, monday, false),
		"short bursts gain on weekdays")
}

func TestScoreReviewBonusRequiresBoth(t *testing.T) {
	review := models.Task{Name: "Review biology notes", Priority: models.PriorityNeither}
	other := models.Task{Name: "Write essay", Priority: models.PriorityNeither}
	profile := plannerProfile{}

	base := scoreAt(t, profile, other, 8, true)
	assert.Equal(t, base+5, scoreAt(t, profile, review, 8, true))
	assert.Equal(t, base, scoreAt(t, profile, review, 8, false), "hint slot required")
}

func TestScoreOverwhelmedPrefersMornings(t *testing.T) {
	profile := plannerProfile{
		Procrastinates:      true,
		ProcrastinationType: models.ProcrastinationOverwhelmed,
	}
	task := models.Task{Priority: models.PriorityNeither}

	morning := scoreAt(t, profile, task, 8, false)
	evening := scoreAt(t, profile, task, 19, false)
	assert.Greater(t, morning, evening)
}

func TestDeadlineProximityBonusThirds(t *testing.T) {
	assert.Equal(t, 0.0, deadlineProximityBonus(0, 0, 9))
	assert.Equal(t, 4.0, deadlineProximityBonus(4, 0, 9))
	assert.Equal(t, 8.0, deadlineProximityBonus(8, 0, 9))
	assert.Equal(t, 8.0, deadlineProximityBonus(0, 0, 0), "single-day window counts as proximate")
}
