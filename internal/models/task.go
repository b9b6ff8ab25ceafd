package models

import "time"

// PriorityClass is the Eisenhower quadrant assigned to a task.
type PriorityClass string

const (
	PriorityUrgentImportant    PriorityClass = "urgent-important"
	PriorityUrgentNotImportant PriorityClass = "urgent-not-important"
	PriorityImportantNotUrgent PriorityClass = "important-not-urgent"
	PriorityNeither            PriorityClass = "neither"
)

// Weight maps a quadrant to its scheduling rank. Lower schedules first.
func (p PriorityClass) Weight() int {
	switch p {
	case PriorityUrgentImportant:
		return 1
	case PriorityUrgentNotImportant:
		return 2
	case PriorityImportantNotUrgent:
		return 3
	default:
		return 4
	}
}

// Task is a unit of work the planner places into time blocks.
type Task struct {
	ID            string        `db:"id" json:"id"`
	UserID        string        `db:"user_id" json:"user_id"`
	Name          string        `db:"name" json:"name"`
	Priority      PriorityClass `db:"priority" json:"priority"`
	Category      string        `db:"category" json:"category"`
	DeadlineDate  time.Time     `db:"deadline_date" json:"deadline_date"`
	DeadlineTime  string        `db:"deadline_time" json:"deadline_time"`
	DurationHours float64       `db:"duration_hours" json:"duration_hours"`
	NeedsComputer bool          `db:"needs_computer" json:"needs_computer"`
	Completed     bool          `db:"completed" json:"completed"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// Deadline combines the deadline date and time-of-day. A missing or
// unparseable time-of-day falls back to 23:59 on the deadline date.
func (t Task) Deadline() time.Time {
	day := time.Date(t.DeadlineDate.Year(), t.DeadlineDate.Month(), t.DeadlineDate.Day(), 0, 0, 0, 0, t.DeadlineDate.Location())
	if t.DeadlineTime != "" {
		if parsed, err := time.Parse("15:04", t.DeadlineTime); err == nil {
			return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
		}
	}
	return day.Add(23*time.Hour + 59*time.Minute)
}

// TaskFilter describes query params for listing tasks.
type TaskFilter struct {
	UserID    string
	Completed *bool
	Category  string
	Page      int
	PageSize  int
}
