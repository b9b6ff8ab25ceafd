package dto

// ProfileCommitment is one weekly commitment entry in the profile payload.
type ProfileCommitment struct {
	Name        string `json:"name" validate:"required,max=100"`
	TimeRange   string `json:"timeRange" validate:"required,max=30"`
	Description string `json:"description,omitempty" validate:"max=300"`
}

// ProfileActivity is one weekend activity entry.
type ProfileActivity struct {
	Name      string `json:"name" validate:"required,max=100"`
	TimeRange string `json:"timeRange" validate:"required,max=30"`
}

// UpdateProfileRequest replaces the user's planning profile.
type UpdateProfileRequest struct {
	WeeklyCommitments   map[string][]ProfileCommitment `json:"weeklyCommitments" validate:"dive,keys,oneof=monday tuesday wednesday thursday friday,endkeys,dive"`
	WeekendActivities   map[string][]ProfileActivity   `json:"weekendActivities" validate:"dive,keys,oneof=saturday sunday,endkeys,dive"`
	BreakRanges         []string                       `json:"breakRanges" validate:"dive,max=30"`
	ProductiveWindow    string                         `json:"productiveWindow" validate:"omitempty,oneof=early-morning morning afternoon evening night"`
	WorkStyle           string                         `json:"workStyle" validate:"omitempty,oneof=short-bursts long-sessions mixed"`
	StudyMethod         string                         `json:"studyMethod" validate:"max=500"`
	Procrastinates      bool                           `json:"procrastinates"`
	ProcrastinationType string                         `json:"procrastinationType" validate:"omitempty,oneof=deadline-driven perfectionist overwhelmed avoidant distraction-prone lack-of-motivation"`
	TroubleFinishing    bool                           `json:"troubleFinishing"`
	PersonalHoursWeekly float64                        `json:"personalHoursWeekly" validate:"gte=0,lte=40"`
	ReviewHoursWeekly   float64                        `json:"reviewHoursWeekly" validate:"gte=0,lte=40"`
}
