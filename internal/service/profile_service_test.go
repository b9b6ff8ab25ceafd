package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
)

type profileRepoStub struct {
	stored *models.UserProfile
	getErr error
	saved  *models.UserProfile
}

func (s *profileRepoStub) GetByUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *profileRepoStub) Upsert(ctx context.Context, profile *models.UserProfile) error {
	s.saved = profile
	return nil
}

func TestProfileServiceGetDefaultsWhenMissing(t *testing.T) {
	repo := &profileRepoStub{getErr: sql.ErrNoRows}
	svc := NewProfileService(repo, nil, nil, nil)

	profile, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.JSONEq(t, "{}", string(profile.WeeklyCommitments))
	assert.JSONEq(t, "[]", string(profile.BreakRanges))
}

func TestProfileServiceUpdateMarshalsCollections(t *testing.T) {
	repo := &profileRepoStub{}
	notify := &notifyRecorder{}
	svc := NewProfileService(repo, nil, nil, notify.fire)

	req := dto.UpdateProfileRequest{
		WeeklyCommitments: map[string][]dto.ProfileCommitment{
			"monday": {{Name: "Math Class", TimeRange: "09:00-10:30"}},
		},
		BreakRanges:         []string{"12:00-13:00"},
		ProductiveWindow:    "morning",
		WorkStyle:           "short-bursts",
		Procrastinates:      true,
		ProcrastinationType: "deadline-driven",
		PersonalHoursWeekly: 7,
	}
	profile, err := svc.Update(context.Background(), "user-1", req)
	require.NoError(t, err)
	require.NotNil(t, repo.saved)

	var weekly map[string][]models.WeeklyCommitment
	require.NoError(t, json.Unmarshal(profile.WeeklyCommitments, &weekly))
	require.Len(t, weekly["monday"], 1)
	assert.Equal(t, "Math Class", weekly["monday"][0].Name)
	assert.Equal(t, models.WindowMorning, profile.ProductiveWindow)
	assert.JSONEq(t, `["12:00-13:00"]`, string(profile.BreakRanges))
	assert.Equal(t, []string{"user-1"}, notify.users)
}

func TestProfileServiceUpdateEmptyCollections(t *testing.T) {
	repo := &profileRepoStub{}
	svc := NewProfileService(repo, nil, nil, nil)

	profile, err := svc.Update(context.Background(), "user-1", dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(profile.WeeklyCommitments))
	assert.JSONEq(t, "{}", string(profile.WeekendActivities))
	assert.JSONEq(t, "[]", string(profile.BreakRanges))
}

func TestProfileServiceUpdateValidation(t *testing.T) {
	repo := &profileRepoStub{}
	svc := NewProfileService(repo, nil, nil, nil)

	_, err := svc.Update(context.Background(), "user-1", dto.UpdateProfileRequest{WorkStyle: "sprints"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.saved)
}
