package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/models"
)

func TestProfileRepositoryGetByUser(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "weekly_commitments", "weekend_activities", "break_ranges",
		"productive_window", "work_style", "study_method", "procrastinates",
		"procrastination_type", "trouble_finishing", "personal_hours_weekly",
		"review_hours_weekly", "created_at", "updated_at",
	}).AddRow("profile-1", "user-1", []byte(`{}`), []byte(`{}`), []byte(`["12:00-13:00"]`),
		"morning", "short-bursts", "", true, "deadline-driven", false, 7.0, 2.0, now, now)

	mock.ExpectQuery(`SELECT .+ FROM user_profiles WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(rows)

	profile, err := repo.GetByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.WindowMorning, profile.ProductiveWindow)
	assert.Equal(t, models.ProcrastinationDeadlineDriven, profile.ProcrastinationType)
	assert.JSONEq(t, `["12:00-13:00"]`, string(profile.BreakRanges))
}

func TestProfileRepositoryGetByUserMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM user_profiles`).
		WithArgs("user-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProfileRepositoryUpsertFillsDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProfileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_profiles`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	profile := &models.UserProfile{UserID: "user-1"}
	require.NoError(t, repo.Upsert(context.Background(), profile))
	assert.NotEmpty(t, profile.ID)
	assert.JSONEq(t, "{}", string(profile.WeeklyCommitments))
	assert.JSONEq(t, "[]", string(profile.BreakRanges))
	require.NoError(t, mock.ExpectationsWereMet())
}
