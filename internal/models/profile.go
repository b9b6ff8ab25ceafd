package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// WorkStyle selects the base chunk/break sizing for scheduled sessions.
type WorkStyle string

const (
	WorkStyleShortBursts  WorkStyle = "short-bursts"
	WorkStyleLongSessions WorkStyle = "long-sessions"
	WorkStyleMixed        WorkStyle = "mixed"
)

// ProcrastinationType refines how sessions are distributed across days.
type ProcrastinationType string

const (
	ProcrastinationDeadlineDriven   ProcrastinationType = "deadline-driven"
	ProcrastinationPerfectionist    ProcrastinationType = "perfectionist"
	ProcrastinationOverwhelmed      ProcrastinationType = "overwhelmed"
	ProcrastinationAvoidant         ProcrastinationType = "avoidant"
	ProcrastinationDistractionProne ProcrastinationType = "distraction-prone"
	ProcrastinationLackOfMotivation ProcrastinationType = "lack-of-motivation"
)

// ProductiveWindow names one of five time-of-day buckets between 06:00 and 24:00.
type ProductiveWindow string

const (
	WindowEarlyMorning ProductiveWindow = "early-morning" // 06:00-09:00
	WindowMorning      ProductiveWindow = "morning"       // 09:00-12:00
	WindowAfternoon    ProductiveWindow = "afternoon"     // 12:00-17:00
	WindowEvening      ProductiveWindow = "evening"       // 17:00-21:00
	WindowNight        ProductiveWindow = "night"         // 21:00-24:00
)

// Hours returns the [start, end) hour range of the window. An unknown or
// empty window falls back to the 09:00-17:00 default.
func (w ProductiveWindow) Hours() (int, int) {
	switch w {
	case WindowEarlyMorning:
		return 6, 9
	case WindowMorning:
		return 9, 12
	case WindowAfternoon:
		return 12, 17
	case WindowEvening:
		return 17, 21
	case WindowNight:
		return 21, 24
	default:
		return 9, 17
	}
}

// WeeklyCommitment is one recurring obligation on a weekday.
type WeeklyCommitment struct {
	Name        string `json:"name"`
	TimeRange   string `json:"time_range"`
	Description string `json:"description,omitempty"`
}

// WeekendActivity is one recurring weekend obligation.
type WeekendActivity struct {
	Name      string `json:"name"`
	TimeRange string `json:"time_range"`
}

// UserProfile captures the behavioral preferences steering the planner.
// Weekly commitments, weekend activities and break ranges are stored as JSONB.
type UserProfile struct {
	ID                  string              `db:"id" json:"id"`
	UserID              string              `db:"user_id" json:"user_id"`
	WeeklyCommitments   types.JSONText      `db:"weekly_commitments" json:"weekly_commitments"`
	WeekendActivities   types.JSONText      `db:"weekend_activities" json:"weekend_activities"`
	BreakRanges         types.JSONText      `db:"break_ranges" json:"break_ranges"`
	ProductiveWindow    ProductiveWindow    `db:"productive_window" json:"productive_window"`
	WorkStyle           WorkStyle           `db:"work_style" json:"work_style"`
	StudyMethod         string              `db:"study_method" json:"study_method"`
	Procrastinates      bool                `db:"procrastinates" json:"procrastinates"`
	ProcrastinationType ProcrastinationType `db:"procrastination_type" json:"procrastination_type"`
	TroubleFinishing    bool                `db:"trouble_finishing" json:"trouble_finishing"`
	PersonalHoursWeekly float64             `db:"personal_hours_weekly" json:"personal_hours_weekly"`
	ReviewHoursWeekly   float64             `db:"review_hours_weekly" json:"review_hours_weekly"`
	CreatedAt           time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at" json:"updated_at"`
}
