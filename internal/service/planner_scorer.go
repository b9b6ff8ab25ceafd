package service

import (
	"strings"
	"time"

	"github.com/axis-planner/axis-api/internal/models"
)

// scoreContext carries the per-task facts the scorer needs beyond the slot
// itself. Scores compare candidates within a single day only.
type scoreContext struct {
	task     models.Task
	profile  plannerProfile
	dayIndex int
	startDay int
	endDay   int
}

// scoreSlot computes the additive desirability of starting a chunk at
// slotStart. Higher is better.
func scoreSlot(ctx scoreContext, slotStart time.Time, reviewPreferred bool) float64 {
	var score float64
	hour := slotStart.Hour()
	weight := ctx.task.Priority.Weight()

	windowStart, windowEnd := ctx.profile.ProductiveWindow.Hours()
	inWindow := hour >= windowStart && hour < windowEnd

	if inWindow {
		score += 10
		if weight <= 2 {
			score += 5
		}
	} else if weight >= 3 {
		score += 3
	}

	if ctx.profile.Procrastinates {
		switch ctx.profile.ProcrastinationType {
		case models.ProcrastinationDeadlineDriven:
			score += deadlineProximityBonus(ctx.dayIndex, ctx.startDay, ctx.endDay)
			if hour >= 14 && hour < 20 {
				score += 3
			}
		case models.ProcrastinationDistractionProne:
			if hour < 9 || hour >= 21 {
				score += 3
			}
		case models.ProcrastinationPerfectionist:
			if inWindow {
				score += 3
			}
		case models.ProcrastinationOverwhelmed:
			if hour < 12 {
				score += 4
			}
		case models.ProcrastinationAvoidant:
			if hour >= 9 && hour < 17 {
				score += 3
			}
		case models.ProcrastinationLackOfMotivation:
			score += 2
		}
	}

	weekday := slotStart.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	switch ctx.profile.WorkStyle {
	case models.WorkStyleLongSessions:
		if isWeekend {
			score += 2
		}
	case models.WorkStyleShortBursts:
		if !isWeekend {
			score += 2
		}
	}

	if reviewPreferred && strings.Contains(strings.ToLower(ctx.task.Name), "review") {
		score += 5
	}

	return score
}

// deadlineProximityBonus grants +8 in the final third of the day window and
// +4 in the middle third, measured by days remaining before the buffer
// cutoff.
func deadlineProximityBonus(dayIndex, startDay, endDay int) float64 {
	total := endDay - startDay
	if total <= 0 {
		return 8
	}
	remaining := float64(endDay-dayIndex) / float64(total)
	switch {
	case remaining <= 1.0/3.0:
		return 8
	case remaining <= 2.0/3.0:
		return 4
	default:
		return 0
	}
}
