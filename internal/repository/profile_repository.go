package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/axis-planner/axis-api/internal/models"
)

// ProfileRepository persists user planning profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs the repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, user_id, weekly_commitments, weekend_activities, break_ranges, productive_window, work_style, study_method, procrastinates, procrastination_type, trouble_finishing, personal_hours_weekly, review_hours_weekly, created_at, updated_at`

// GetByUser returns the stored profile for a user.
func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM user_profiles WHERE user_id = $1`, profileColumns)
	var profile models.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or updates the profile for a user.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	if len(profile.WeeklyCommitments) == 0 {
		profile.WeeklyCommitments = []byte("{}")
	}
	if len(profile.WeekendActivities) == 0 {
		profile.WeekendActivities = []byte("{}")
	}
	if len(profile.BreakRanges) == 0 {
		profile.BreakRanges = []byte("[]")
	}

	const query = `INSERT INTO user_profiles (id, user_id, weekly_commitments, weekend_activities, break_ranges, productive_window, work_style, study_method, procrastinates, procrastination_type, trouble_finishing, personal_hours_weekly, review_hours_weekly, created_at, updated_at)
		VALUES (:id, :user_id, :weekly_commitments, :weekend_activities, :break_ranges, :productive_window, :work_style, :study_method, :procrastinates, :procrastination_type, :trouble_finishing, :personal_hours_weekly, :review_hours_weekly, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE
		SET weekly_commitments = EXCLUDED.weekly_commitments,
		    weekend_activities = EXCLUDED.weekend_activities,
		    break_ranges = EXCLUDED.break_ranges,
		    productive_window = EXCLUDED.productive_window,
		    work_style = EXCLUDED.work_style,
		    study_method = EXCLUDED.study_method,
		    procrastinates = EXCLUDED.procrastinates,
		    procrastination_type = EXCLUDED.procrastination_type,
		    trouble_finishing = EXCLUDED.trouble_finishing,
		    personal_hours_weekly = EXCLUDED.personal_hours_weekly,
		    review_hours_weekly = EXCLUDED.review_hours_weekly,
		    updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
