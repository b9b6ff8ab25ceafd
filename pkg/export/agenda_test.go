package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/models"
)

func exportPlan() models.Plan {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return models.Plan{
		GeneratedAt: start,
		Blocks: []models.ScheduledBlock{{
			TaskName: "essay",
			StartAt:  start.Add(2 * time.Hour),
			EndAt:    start.Add(2*time.Hour + 30*time.Minute),
		}},
		FixedBlocks: []models.FixedBlock{{
			Label:    "Math Class",
			Category: models.CommitmentRoutine,
			StartAt:  start,
			EndAt:    start.Add(90 * time.Minute),
		}},
	}
}

func TestFromPlanSortsChronologically(t *testing.T) {
	agenda := FromPlan(exportPlan())

	require.Len(t, agenda.Rows, 2)
	assert.Equal(t, "Math Class", agenda.Rows[0].Label)
	assert.Equal(t, "routine", agenda.Rows[0].Kind)
	assert.Equal(t, "essay", agenda.Rows[1].Label)
	assert.Equal(t, "task", agenda.Rows[1].Kind)
	assert.Equal(t, "09:00", agenda.Rows[0].Start)
	assert.Equal(t, "10:30", agenda.Rows[0].End)
}

func TestCSVExporterRender(t *testing.T) {
	payload, err := NewCSVExporter().Render(FromPlan(exportPlan()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Start,End,Activity,Type", lines[0])
	assert.Contains(t, lines[1], "Math Class")
	assert.Contains(t, lines[2], "essay")
}

func TestPDFExporterRender(t *testing.T) {
	payload, err := NewPDFExporter().Render(FromPlan(exportPlan()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}
