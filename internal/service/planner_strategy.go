package service

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/axis-planner/axis-api/internal/models"
)

// dayStrategy governs how a task's chunks spread across its day window.
type dayStrategy string

const (
	strategyBalanced          dayStrategy = "balanced"
	strategyEarly             dayStrategy = "early"
	strategyDistributed       dayStrategy = "distributed"
	strategyIntensive         dayStrategy = "intensive"
	strategyDeadlineProximate dayStrategy = "deadline-proximate"
)

// sessionPlan is the per-user chunking policy derived from the profile.
type sessionPlan struct {
	ChunkMinutes int
	BreakMinutes int
	Strategy     dayStrategy
}

// rankTasks filters out completed tasks and orders the rest by Eisenhower
// weight, then deadline. The sort is stable so equal tasks keep their
// incoming order.
func rankTasks(tasks []models.Task) []models.Task {
	ranked := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		ranked = append(ranked, t)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := ranked[i].Priority.Weight(), ranked[j].Priority.Weight()
		if wi != wj {
			return wi < wj
		}
		return ranked[i].Deadline().Before(ranked[j].Deadline())
	})
	return ranked
}

var (
	chunkPattern = regexp.MustCompile(`(\d+)\s*min(?:ute)?s?`)
	breakPattern = regexp.MustCompile(`(\d+)\s*min(?:ute)?s?[^0-9]*?breaks?`)
)

// studyMethodOverride carries explicit chunk/break lengths parsed from the
// free-text study method. Nil fields mean no override.
type studyMethodOverride struct {
	ChunkMinutes *int
	BreakMinutes *int
}

// parseStudyMethod extracts "<N> min(ute)" (15-120) as the chunk length and
// "<M> min(ute) ... break" (0-30) as the break length. Anything else in the
// text is ignored; the allocator only ever sees resolved integers.
func parseStudyMethod(text string) studyMethodOverride {
	var override studyMethodOverride
	if text == "" {
		return override
	}
	if m := chunkPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 15 && n <= 120 {
			override.ChunkMinutes = &n
		}
	}
	if m := breakPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 && n <= 30 {
			override.BreakMinutes = &n
		}
	}
	return override
}

// selectStrategy resolves chunk size, break length and day distribution for
// the profile.
func selectStrategy(profile plannerProfile) sessionPlan {
	plan := sessionPlan{Strategy: strategyBalanced}

	switch profile.WorkStyle {
	case models.WorkStyleShortBursts:
		plan.ChunkMinutes, plan.BreakMinutes = 25, 5
	case models.WorkStyleLongSessions:
		plan.ChunkMinutes, plan.BreakMinutes = 60, 10
	default:
		plan.ChunkMinutes, plan.BreakMinutes = 30, 0
	}

	override := parseStudyMethod(profile.StudyMethod)
	if override.ChunkMinutes != nil {
		plan.ChunkMinutes = *override.ChunkMinutes
	}
	if override.BreakMinutes != nil {
		plan.BreakMinutes = *override.BreakMinutes
	}

	if profile.TroubleFinishing {
		if plan.ChunkMinutes > 25 {
			plan.ChunkMinutes = 25
		}
		if plan.BreakMinutes < 5 {
			plan.BreakMinutes = 5
		}
	}

	if profile.Procrastinates {
		switch profile.ProcrastinationType {
		case models.ProcrastinationDeadlineDriven:
			plan.Strategy = strategyDeadlineProximate
		case models.ProcrastinationPerfectionist, models.ProcrastinationOverwhelmed, models.ProcrastinationAvoidant:
			plan.Strategy = strategyDistributed
		case models.ProcrastinationLackOfMotivation, models.ProcrastinationDistractionProne:
			plan.Strategy = strategyIntensive
		default:
			plan.Strategy = strategyBalanced
		}
	}

	return plan
}
