package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/axis-planner/axis-api/internal/models"
)

// PersonalTimePlacement selects where weekly personal-time slots are reserved.
// Only end-of-day is implemented; the knob exists so the policy is explicit.
type PersonalTimePlacement string

const PersonalTimeEndOfDay PersonalTimePlacement = "end-of-day"

// gridConfig bounds the slot grid built for one planner run.
type gridConfig struct {
	HorizonDays  int
	SlotMinutes  int
	DayStartHour int
	DayEndHour   int
	Personal     PersonalTimePlacement
}

func defaultGridConfig() gridConfig {
	return gridConfig{
		HorizonDays:  14,
		SlotMinutes:  30,
		DayStartHour: 6,
		DayEndHour:   24,
		Personal:     PersonalTimeEndOfDay,
	}
}

// plannerProfile is the decoded, engine-facing view of a stored UserProfile.
// JSONB fields are unmarshalled best-effort at this boundary so the allocator
// never touches raw strings.
type plannerProfile struct {
	Weekly              map[string][]models.WeeklyCommitment
	Weekend             map[string][]models.WeekendActivity
	Breaks              []string
	ProductiveWindow    models.ProductiveWindow
	WorkStyle           models.WorkStyle
	StudyMethod         string
	Procrastinates      bool
	ProcrastinationType models.ProcrastinationType
	TroubleFinishing    bool
	PersonalHoursWeekly float64
	ReviewHoursWeekly   float64
}

// decodeProfile unwraps the JSONB profile fields. Malformed payloads decode
// to empty collections rather than failing the run.
func decodeProfile(p models.UserProfile) plannerProfile {
	out := plannerProfile{
		Weekly:              map[string][]models.WeeklyCommitment{},
		Weekend:             map[string][]models.WeekendActivity{},
		ProductiveWindow:    p.ProductiveWindow,
		WorkStyle:           p.WorkStyle,
		StudyMethod:         p.StudyMethod,
		Procrastinates:      p.Procrastinates,
		ProcrastinationType: p.ProcrastinationType,
		TroubleFinishing:    p.TroubleFinishing,
		PersonalHoursWeekly: p.PersonalHoursWeekly,
		ReviewHoursWeekly:   p.ReviewHoursWeekly,
	}
	if len(p.WeeklyCommitments) > 0 {
		_ = json.Unmarshal(p.WeeklyCommitments, &out.Weekly)
	}
	if len(p.WeekendActivities) > 0 {
		_ = json.Unmarshal(p.WeekendActivities, &out.Weekend)
	}
	if len(p.BreakRanges) > 0 {
		_ = json.Unmarshal(p.BreakRanges, &out.Breaks)
	}
	return out
}

// slot is one 30-minute unit of availability. Mutated in place as the
// allocator commits chunks.
type slot struct {
	Available       bool
	Personal        bool
	ReviewPreferred bool
}

// gridDay holds the slots of one calendar day in the horizon.
type gridDay struct {
	Date  time.Time // midnight, local
	Slots []slot
}

// fixedSlot is one slot-sized piece of a fixed commitment, kept for the merger.
type fixedSlot struct {
	Label    string
	Category models.CommitmentCategory
	StartAt  time.Time
	EndAt    time.Time
}

// slotGrid is the availability arena for one planner run.
type slotGrid struct {
	cfg   gridConfig
	Days  []gridDay
	Fixed []fixedSlot
}

func (g *slotGrid) slotsPerDay() int {
	return (g.cfg.DayEndHour - g.cfg.DayStartHour) * 60 / g.cfg.SlotMinutes
}

// slotStart returns the wall-clock start of slot idx on day.
func (g *slotGrid) slotStart(day, idx int) time.Time {
	minutes := g.cfg.DayStartHour*60 + idx*g.cfg.SlotMinutes
	return g.Days[day].Date.Add(time.Duration(minutes) * time.Minute)
}

// markUnavailable blocks every slot of the day overlapping [startMin, endMin),
// expressed as minutes from midnight.
func (g *slotGrid) markUnavailable(day, startMin, endMin int) {
	slots := g.Days[day].Slots
	base := g.cfg.DayStartHour * 60
	for i := range slots {
		slotStart := base + i*g.cfg.SlotMinutes
		slotEnd := slotStart + g.cfg.SlotMinutes
		if slotStart < endMin && slotEnd > startMin {
			slots[i].Available = false
		}
	}
}

// recordFixed appends slot-aligned fixed pieces for the merger, one per
// overlapped slot, clamped to the grid day.
func (g *slotGrid) recordFixed(day int, label string, category models.CommitmentCategory, startMin, endMin int) {
	base := g.cfg.DayStartHour * 60
	limit := g.cfg.DayEndHour * 60
	for m := base; m < limit; m += g.cfg.SlotMinutes {
		pieceEnd := m + g.cfg.SlotMinutes
		if m >= endMin || pieceEnd <= startMin {
			continue
		}
		start := maxInt(m, startMin)
		end := minInt(pieceEnd, endMin)
		g.Fixed = append(g.Fixed, fixedSlot{
			Label:    label,
			Category: category,
			StartAt:  g.Days[day].Date.Add(time.Duration(start) * time.Minute),
			EndAt:    g.Days[day].Date.Add(time.Duration(end) * time.Minute),
		})
	}
}

// buildGrid constructs the availability grid over the horizon starting at the
// midnight of now. Slots already begun on the first day are closed so nothing
// can be placed in the past. Pure function of (profile, cfg, now).
func buildGrid(profile plannerProfile, cfg gridConfig, now time.Time) *slotGrid {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	grid := &slotGrid{cfg: cfg}
	perDay := (cfg.DayEndHour - cfg.DayStartHour) * 60 / cfg.SlotMinutes

	for d := 0; d < cfg.HorizonDays; d++ {
		date := today.AddDate(0, 0, d)
		slots := make([]slot, perDay)
		for i := range slots {
			slots[i].Available = true
		}
		grid.Days = append(grid.Days, gridDay{Date: date, Slots: slots})

		if d == 0 {
			for i := range slots {
				if grid.slotStart(d, i).Before(now) {
					slots[i].Available = false
				}
			}
		}

		weekday := strings.ToLower(date.Weekday().String())
		isWeekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		if !isWeekend {
			for _, commitment := range profile.Weekly[weekday] {
				startMin, endMin, ok := parseTimeRange(commitment.TimeRange)
				if !ok {
					continue
				}
				grid.markUnavailable(d, startMin, endMin)
				grid.recordFixed(d, commitment.Name, models.CommitmentRoutine, startMin, endMin)
			}
		}

		for _, rng := range profile.Breaks {
			startMin, endMin, ok := parseTimeRange(rng)
			if !ok {
				continue
			}
			grid.markUnavailable(d, startMin, endMin)
			grid.recordFixed(d, "Break", models.CommitmentBreak, startMin, endMin)
		}

		if isWeekend {
			for _, activity := range profile.Weekend[weekday] {
				startMin, endMin, ok := parseTimeRange(activity.TimeRange)
				if !ok {
					continue
				}
				grid.markUnavailable(d, startMin, endMin)
				grid.recordFixed(d, activity.Name, models.CommitmentWeekend, startMin, endMin)
			}
		}
	}

	if profile.PersonalHoursWeekly > 0 {
		reservePersonalTime(grid, profile.PersonalHoursWeekly)
	}

	if profile.ReviewHoursWeekly > 0 {
		markReviewPreferred(grid)
	}

	return grid
}

// reservePersonalTime spreads the weekly personal-time budget evenly across
// the week and claims that many slots from the end of each day backward.
// Evening slots go first; the scorer never sees them.
func reservePersonalTime(grid *slotGrid, hoursWeekly float64) {
	minutesPerDay := hoursWeekly * 60 / 7
	slotsPerDay := int(math.Ceil(minutesPerDay / float64(grid.cfg.SlotMinutes)))
	if slotsPerDay <= 0 {
		return
	}
	for d := range grid.Days {
		claimed := 0
		slots := grid.Days[d].Slots
		for i := len(slots) - 1; i >= 0 && claimed < slotsPerDay; i-- {
			if !slots[i].Available {
				continue
			}
			slots[i].Available = false
			slots[i].Personal = true
			start := grid.slotStart(d, i)
			grid.Fixed = append(grid.Fixed, fixedSlot{
				Label:    "Personal time",
				Category: models.CommitmentPersonal,
				StartAt:  start,
				EndAt:    start.Add(time.Duration(grid.cfg.SlotMinutes) * time.Minute),
			})
			claimed++
		}
	}
}

// markReviewPreferred tags 08:00-11:00 slots as soft review hints.
func markReviewPreferred(grid *slotGrid) {
	base := grid.cfg.DayStartHour * 60
	for d := range grid.Days {
		for i := range grid.Days[d].Slots {
			startMin := base + i*grid.cfg.SlotMinutes
			if startMin >= 8*60 && startMin < 11*60 {
				grid.Days[d].Slots[i].ReviewPreferred = true
			}
		}
	}
}

// parseTimeRange parses strings like "09:00-10:30" or "9:00 - 17:00" into
// minutes from midnight. Unparseable input reports ok=false and is skipped
// by callers.
func parseTimeRange(raw string) (startMin, endMin int, ok bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, okStart := parseClock(parts[0])
	end, okEnd := parseClock(parts[1])
	if !okStart || !okEnd || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	pieces := strings.SplitN(raw, ":", 2)
	if len(pieces) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(pieces[0]))
	if err != nil || hour < 0 || hour > 24 {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(pieces[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
