package service

import (
	"sort"
	"time"

	"github.com/axis-planner/axis-api/internal/models"
)

// mergeGapTolerance joins fixed pieces whose gap is at most one minute.
const mergeGapTolerance = time.Minute

// mergeFixedBlocks coalesces the slot-sized fixed-commitment pieces recorded
// during grid construction into displayable intervals. Pieces merge only
// within the same (date, label, category) group; availability semantics were
// already applied to the grid and are untouched here.
func mergeFixedBlocks(fixed []fixedSlot) []models.FixedBlock {
	type groupKey struct {
		date     string
		label    string
		category models.CommitmentCategory
	}

	groups := make(map[groupKey][]fixedSlot)
	for _, piece := range fixed {
		key := groupKey{
			date:     piece.StartAt.Format("2006-01-02"),
			label:    piece.Label,
			category: piece.Category,
		}
		groups[key] = append(groups[key], piece)
	}

	merged := make([]models.FixedBlock, 0, len(groups))
	for key, pieces := range groups {
		sort.Slice(pieces, func(i, j int) bool { return pieces[i].StartAt.Before(pieces[j].StartAt) })
		current := models.FixedBlock{
			Label:    key.label,
			Category: key.category,
			StartAt:  pieces[0].StartAt,
			EndAt:    pieces[0].EndAt,
		}
		for _, piece := range pieces[1:] {
			if piece.StartAt.Sub(current.EndAt) <= mergeGapTolerance {
				if piece.EndAt.After(current.EndAt) {
					current.EndAt = piece.EndAt
				}
				continue
			}
			merged = append(merged, current)
			current = models.FixedBlock{
				Label:    key.label,
				Category: key.category,
				StartAt:  piece.StartAt,
				EndAt:    piece.EndAt,
			}
		}
		merged = append(merged, current)
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].StartAt.Equal(merged[j].StartAt) {
			return merged[i].StartAt.Before(merged[j].StartAt)
		}
		if merged[i].Label != merged[j].Label {
			return merged[i].Label < merged[j].Label
		}
		return merged[i].Category < merged[j].Category
	})
	return merged
}
