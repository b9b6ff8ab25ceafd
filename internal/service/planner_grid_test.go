package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/models"
)

// 2025-03-10 is a Monday.
var testNow = time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

func TestParseTimeRange(t *testing.T) {
	cases := []struct {
		raw   string
		start int
		end   int
		ok    bool
	}{
		{"09:00-10:30", 540, 630, true},
		{"9:00 - 17:00", 540, 1020, true},
		{"22:00-24:00", 1320, 1440, true},
		{"10:00", 0, 0, false},
		{"10:00-09:00", 0, 0, false},
		{"abc-def", 0, 0, false},
		{"25:00-26:00", 0, 0, false},
	}
	for _, tc := range cases {
		start, end, ok := parseTimeRange(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		if tc.ok {
			assert.Equal(t, tc.start, start, tc.raw)
			assert.Equal(t, tc.end, end, tc.raw)
		}
	}
}

func TestBuildGridBlocksWeekdayCommitments(t *testing.T) {
	profile := plannerProfile{
		Weekly: map[string][]models.WeeklyCommitment{
			"monday": {{Name: "Math Class", TimeRange: "09:00-10:30"}},
		},
	}
	grid := buildGrid(profile, defaultGridConfig(), testNow)

	require.Len(t, grid.Days, 14)
	// Day 0 is Monday. Slots at 09:00, 09:30 and 10:00 are taken.
	for _, h := range []int{9} {
		idx := (h - 6) * 2
		assert.False(t, grid.Days[0].Slots[idx].Available)
		assert.False(t, grid.Days[0].Slots[idx+1].Available)
	}
	assert.False(t, grid.Days[0].Slots[(10-6)*2].Available)
	assert.True(t, grid.Days[0].Slots[(10-6)*2+1].Available, "10:30 slot stays free")

	// Tuesday has no Monday commitment.
	assert.True(t, grid.Days[1].Slots[(9-6)*2].Available)

	// Weekly commitments never apply on weekends even under the same key.
	saturday := 5
	assert.Equal(t, time.Saturday, grid.Days[saturday].Date.Weekday())
	assert.True(t, grid.Days[saturday].Slots[(9-6)*2].Available)
}

func TestBuildGridWeekendActivities(t *testing.T) {
	profile := plannerProfile{
		Weekend: map[string][]models.WeekendActivity{
			"saturday": {{Name: "Soccer", TimeRange: "10:00-12:00"}},
		},
	}
	grid := buildGrid(profile, defaultGridConfig(), testNow)

	saturday := 5
	require.Equal(t, time.Saturday, grid.Days[saturday].Date.Weekday())
	assert.False(t, grid.Days[saturday].Slots[(10-6)*2].Available)
	assert.False(t, grid.Days[saturday].Slots[(11-6)*2+1].Available)
	assert.True(t, grid.Days[0].Slots[(10-6)*2].Available, "weekday untouched")
}

func TestBuildGridClosesElapsedSlotsToday(t *testing.T) {
	grid := buildGrid(plannerProfile{}, defaultGridConfig(), testNow)

	// testNow is 07:30, so the 06:00, 06:30 and 07:00 slots have begun.
	assert.False(t, grid.Days[0].Slots[0].Available)
	assert.False(t, grid.Days[0].Slots[1].Available)
	assert.False(t, grid.Days[0].Slots[2].Available)
	assert.True(t, grid.Days[0].Slots[3].Available, "07:30 slot has not begun")

	// Later days keep their mornings.
	assert.True(t, grid.Days[1].Slots[0].Available)
}

func TestBuildGridBreaksApplyEveryDay(t *testing.T) {
	profile := plannerProfile{Breaks: []string{"12:00-13:00"}}
	grid := buildGrid(profile, defaultGridConfig(), testNow)

	for d := range grid.Days {
		assert.False(t, grid.Days[d].Slots[(12-6)*2].Available, "day %d", d)
		assert.False(t, grid.Days[d].Slots[(12-6)*2+1].Available, "day %d", d)
	}
}

func TestBuildGridSkipsMalformedRanges(t *testing.T) {
	profile := plannerProfile{Breaks: []string{"lunchish", "26:00-27:00"}}
	grid := buildGrid(profile, defaultGridConfig(), testNow)

	for _, s := range grid.Days[1].Slots {
		assert.True(t, s.Available)
	}
	assert.Empty(t, grid.Fixed)
}

func TestReservePersonalTimeClaimsEndOfDay(t *testing.T) {
	profile := plannerProfile{PersonalHoursWeekly: 7}
	grid := buildGrid(profile, defaultGridConfig(), testNow)

	perDay := grid.slotsPerDay()
	for d := range grid.Days {
		slots := grid.Days[d].Slots
		// 7h/week is 60 minutes per day, two 30-minute slots at the day tail.
		assert.True(t, slots[perDay-1].Personal, "day %d", d)
		assert.True(t, slots[perDay-2].Personal, "day %d", d)
		assert.False(t, slots[perDay-1].Available, "day %d", d)
		assert.True(t, slots[perDay-3].Available, "day %d", d)
	}

	personal := 0
	for _, piece := range grid.Fixed {
		if piece.Category == models.CommitmentPersonal {
			personal++
			assert.Equal(t, "Personal time", piece.Label)
		}
	}
	assert.Equal(t, 2*len(grid.Days), personal)
}

func TestReviewPreferredWindow(t *testing.T) {
	profile := plannerProfile{ReviewHoursWeekly: 2}
	grid := buildGrid(profile, defaultGridConfig(), testNow)

	assert.False(t, grid.Days[0].Slots[(7-6)*2].ReviewPreferred)
	assert.True(t, grid.Days[0].Slots[(8-6)*2].ReviewPreferred)
	assert.True(t, grid.Days[0].Slots[(10-6)*2+1].ReviewPreferred)
	assert.False(t, grid.Days[0].Slots[(11-6)*2].ReviewPreferred)
}

func TestDecodeProfileToleratesMalformedJSON(t *testing.T) {
	stored := models.UserProfile{
		WeeklyCommitments: []byte(`{"monday": [{"name": "Math", "time_range": "09:00-10:00"}]}`),
		WeekendActivities: []byte(`not-json`),
		BreakRanges:       []byte(`["12:00-13:00"]`),
		WorkStyle:         models.WorkStyleShortBursts,
	}
	decoded := decodeProfile(stored)

	require.Len(t, decoded.Weekly["monday"], 1)
	assert.Equal(t, "Math", decoded.Weekly["monday"][0].Name)
	assert.Empty(t, decoded.Weekend)
	assert.Equal(t, []string{"12:00-13:00"}, decoded.Breaks)
	assert.Equal(t, models.WorkStyleShortBursts, decoded.WorkStyle)
}
