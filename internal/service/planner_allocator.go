package service

import (
	"math"
	"sort"
	"time"

	"github.com/axis-planner/axis-api/internal/models"
)

const (
	defaultBufferMinutes        = 30
	procrastinatorBufferMinutes = 60
)

// allocation is the outcome of placing one task.
type allocation struct {
	Blocks    []models.ScheduledBlock
	Placement models.TaskPlacement
}

// computePlan runs the full pipeline for one user: grid construction, task
// ranking, strategy selection, greedy placement and fixed-block merging.
// Pure function of its inputs; the grid is rebuilt from scratch every call.
func computePlan(profile plannerProfile, tasks []models.Task, cfg gridConfig, now time.Time) models.Plan {
	grid := buildGrid(profile, cfg, now)
	ranked := rankTasks(tasks)
	sessions := selectStrategy(profile)

	plan := models.Plan{
		GeneratedAt: now,
		HorizonDays: cfg.HorizonDays,
		Blocks:      []models.ScheduledBlock{},
		Placements:  make([]models.TaskPlacement, 0, len(ranked)),
	}
	for _, task := range ranked {
		result := allocateTask(grid, task, profile, sessions, now)
		plan.Blocks = append(plan.Blocks, result.Blocks...)
		plan.Placements = append(plan.Placements, result.Placement)
	}
	plan.FixedBlocks = mergeFixedBlocks(grid.Fixed)
	return plan
}

// allocateTask greedily commits the task's chunks to the highest scoring
// slots inside its deadline-bounded day window. Failing to place everything
// is reported through the placement, never as an error.
func allocateTask(grid *slotGrid, task models.Task, profile plannerProfile, sessions sessionPlan, now time.Time) allocation {
	placement := models.TaskPlacement{TaskID: task.ID, TaskName: task.Name}

	totalMinutes := int(math.Ceil(task.DurationHours * 60))
	if totalMinutes <= 0 {
		placement.Status = models.PlacementScheduled
		return allocation{Placement: placement}
	}
	chunkCount := ceilDiv(totalMinutes, sessions.ChunkMinutes)
	placement.RequiredChunks = chunkCount

	cutoff := task.Deadline().Add(-time.Duration(bufferMinutes(profile)) * time.Minute)
	if !cutoff.After(now) {
		placement.Status = models.PlacementInfeasible
		return allocation{Placement: placement}
	}

	endDay := -1
	for i := range grid.Days {
		if grid.Days[i].Date.After(cutoff) {
			break
		}
		endDay = i
	}
	if endDay < 0 {
		placement.Status = models.PlacementInfeasible
		return allocation{Placement: placement}
	}
	startDay := 0
	daysAvailable := endDay - startDay + 1
	maxPerDay := chunksPerDay(sessions.Strategy, chunkCount, daysAvailable)

	order := dayOrder(startDay, endDay, sessions.Strategy)

	var blocks []models.ScheduledBlock
	placed := 0
	for _, day := range order {
		if placed >= chunkCount {
			break
		}
		var lastChunkEnd time.Time
		placedToday := 0
		for placed < chunkCount && placedToday < maxPerDay {
			remaining := totalMinutes - placed*sessions.ChunkMinutes
			chunkMinutes := minInt(sessions.ChunkMinutes, remaining)

			start, ok := bestSlot(grid, day, chunkMinutes, cutoff, lastChunkEnd, sessions.BreakMinutes, scoreContext{
				task:     task,
				profile:  profile,
				dayIndex: day,
				startDay: startDay,
				endDay:   endDay,
			})
			if !ok {
				break
			}
			end := start.Add(time.Duration(chunkMinutes) * time.Minute)
			commitChunk(grid, day, start, end, sessions.BreakMinutes)
			blocks = append(blocks, models.ScheduledBlock{
				TaskID:   task.ID,
				TaskName: task.Name,
				Category: task.Category,
				StartAt:  start,
				EndAt:    end,
			})
			lastChunkEnd = end
			placed++
			placedToday++
		}
	}

	placement.ScheduledChunks = placed
	if placed >= chunkCount {
		placement.Status = models.PlacementScheduled
	} else {
		placement.Status = models.PlacementPartial
	}

	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].StartAt.Before(blocks[j].StartAt) })
	return allocation{Blocks: blocks, Placement: placement}
}

// bufferMinutes is the safety margin before the deadline. The procrastinator
// and trouble-finishing rules combine via max, not addition.
func bufferMinutes(profile plannerProfile) int {
	buffer := defaultBufferMinutes
	if profile.Procrastinates {
		buffer = procrastinatorBufferMinutes
	}
	if profile.TroubleFinishing && buffer < procrastinatorBufferMinutes {
		buffer = procrastinatorBufferMinutes
	}
	return buffer
}

// chunksPerDay caps daily placements per the distribution strategy.
func chunksPerDay(strategy dayStrategy, chunkCount, daysAvailable int) int {
	switch strategy {
	case strategyIntensive:
		return ceilDiv(chunkCount, maxInt(1, daysAvailable/2))
	case strategyEarly, strategyDeadlineProximate:
		return ceilDiv(chunkCount, maxInt(1, daysAvailable-2))
	default:
		return ceilDiv(chunkCount, daysAvailable)
	}
}

// dayOrder iterates forward except for deadline-proximate, which walks the
// window backward so greedy placement lands near the deadline.
func dayOrder(startDay, endDay int, strategy dayStrategy) []int {
	order := make([]int, 0, endDay-startDay+1)
	if strategy == strategyDeadlineProximate {
		for d := endDay; d >= startDay; d-- {
			order = append(order, d)
		}
		return order
	}
	for d := startDay; d <= endDay; d++ {
		order = append(order, d)
	}
	return order
}

// bestSlot scores every candidate start slot on the day and returns the
// highest scoring one. Candidates must fit the chunk before the cutoff,
// keep the break spacing from the previous chunk on the same day, and
// cover only available slots. Ties resolve to the earlier slot so output
// is deterministic.
func bestSlot(grid *slotGrid, day, chunkMinutes int, cutoff time.Time, lastChunkEnd time.Time, breakMinutes int, ctx scoreContext) (time.Time, bool) {
	found := false
	var bestStart time.Time
	bestScore := math.Inf(-1)

	slots := grid.Days[day].Slots
	for i := range slots {
		if !slots[i].Available {
			continue
		}
		start := grid.slotStart(day, i)
		end := start.Add(time.Duration(chunkMinutes) * time.Minute)
		if end.After(cutoff) {
			continue
		}
		if !spanAvailable(grid, day, i, chunkMinutes) {
			continue
		}
		if !lastChunkEnd.IsZero() && start.Before(lastChunkEnd.Add(time.Duration(breakMinutes)*time.Minute)) {
			continue
		}
		score := scoreSlot(ctx, start, slots[i].ReviewPreferred)
		if score > bestScore {
			bestScore = score
			bestStart = start
			found = true
		}
	}
	if !found {
		return time.Time{}, false
	}
	return bestStart, true
}

// spanAvailable reports whether every slot the chunk would cover is free and
// inside the day.
func spanAvailable(grid *slotGrid, day, idx, chunkMinutes int) bool {
	span := ceilDiv(chunkMinutes, grid.cfg.SlotMinutes)
	slots := grid.Days[day].Slots
	if idx+span > len(slots) {
		return false
	}
	for i := idx; i < idx+span; i++ {
		if !slots[i].Available {
			return false
		}
	}
	return true
}

// commitChunk consumes the chunk's slots. Breaks of 15 minutes or less are
// absorbed into the grid right after the chunk; longer breaks are assumed to
// come from the profile's own fixed break ranges.
func commitChunk(grid *slotGrid, day int, start, end time.Time, breakMinutes int) {
	markSpan(grid, day, start, end)
	if breakMinutes > 0 && breakMinutes <= 15 {
		markSpan(grid, day, end, end.Add(time.Duration(breakMinutes)*time.Minute))
	}
}

func markSpan(grid *slotGrid, day int, start, end time.Time) {
	midnight := grid.Days[day].Date
	startMin := int(start.Sub(midnight) / time.Minute)
	endMin := int(end.Sub(midnight) / time.Minute)
	grid.markUnavailable(day, startMin, endMin)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
