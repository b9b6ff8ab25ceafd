package export

import (
	"sort"
	"time"

	"github.com/axis-planner/axis-api/internal/models"
)

// AgendaRow is one printable line of a schedule export.
type AgendaRow struct {
	Date  string
	Start string
	End   string
	Label string
	Kind  string
}

// Agenda is the flattened, chronologically sorted view of a plan used by the
// CSV and PDF exporters.
type Agenda struct {
	Title string
	Rows  []AgendaRow
}

// FromPlan merges scheduled blocks and fixed blocks into a single agenda
// sorted by start time.
func FromPlan(plan models.Plan) Agenda {
	type timed struct {
		start time.Time
		row   AgendaRow
	}

	items := make([]timed, 0, len(plan.Blocks)+len(plan.FixedBlocks))
	for _, b := range plan.Blocks {
		items = append(items, timed{start: b.StartAt, row: AgendaRow{
			Date:  b.StartAt.Format("2006-01-02"),
			Start: b.StartAt.Format("15:04"),
			End:   b.EndAt.Format("15:04"),
			Label: b.TaskName,
			Kind:  "task",
		}})
	}
	for _, f := range plan.FixedBlocks {
		items = append(items, timed{start: f.StartAt, row: AgendaRow{
			Date:  f.StartAt.Format("2006-01-02"),
			Start: f.StartAt.Format("15:04"),
			End:   f.EndAt.Format("15:04"),
			Label: f.Label,
			Kind:  string(f.Category),
		}})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].start.Before(items[j].start) })

	rows := make([]AgendaRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.row)
	}
	return Agenda{
		Title: "Schedule " + plan.GeneratedAt.Format("2006-01-02"),
		Rows:  rows,
	}
}

var agendaHeaders = []string{"Date", "Start", "End", "Activity", "Type"}
