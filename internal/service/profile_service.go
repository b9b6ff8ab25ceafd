package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/axis-planner/axis-api/internal/dto"
	"github.com/axis-planner/axis-api/internal/models"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
)

type profileRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

// ProfileService manages planning profiles.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
	logger    *zap.Logger
	onChange  func(userID string)
}

// NewProfileService constructs the service.
func NewProfileService(repo profileRepository, validate *validator.Validate, logger *zap.Logger, onChange func(userID string)) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger, onChange: onChange}
}

// Get returns the user's profile. A user without one gets an empty profile
// so the planner can still run with defaults.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.UserProfile{
				UserID:            userID,
				WeeklyCommitments: types.JSONText("{}"),
				WeekendActivities: types.JSONText("{}"),
				BreakRanges:       types.JSONText("[]"),
			}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return profile, nil
}

// Update validates and upserts the full profile.
func (s *ProfileService) Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	weekly := make(map[string][]models.WeeklyCommitment, len(req.WeeklyCommitments))
	for day, entries := range req.WeeklyCommitments {
		for _, e := range entries {
			weekly[day] = append(weekly[day], models.WeeklyCommitment{
				Name:        e.Name,
				TimeRange:   e.TimeRange,
				Description: e.Description,
			})
		}
	}
	weekend := make(map[string][]models.WeekendActivity, len(req.WeekendActivities))
	for day, entries := range req.WeekendActivities {
		for _, e := range entries {
			weekend[day] = append(weekend[day], models.WeekendActivity{
				Name:      e.Name,
				TimeRange: e.TimeRange,
			})
		}
	}

	commitments, err := marshalJSONB(weekly, "{}")
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid weekly commitments")
	}
	activities, err := marshalJSONB(weekend, "{}")
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid weekend activities")
	}
	breaks, err := marshalJSONB(req.BreakRanges, "[]")
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid break ranges")
	}
	profile := &models.UserProfile{
		UserID:              userID,
		WeeklyCommitments:   commitments,
		WeekendActivities:   activities,
		BreakRanges:         breaks,
		ProductiveWindow:    models.ProductiveWindow(req.ProductiveWindow),
		WorkStyle:           models.WorkStyle(req.WorkStyle),
		StudyMethod:         req.StudyMethod,
		Procrastinates:      req.Procrastinates,
		ProcrastinationType: models.ProcrastinationType(req.ProcrastinationType),
		TroubleFinishing:    req.TroubleFinishing,
		PersonalHoursWeekly: req.PersonalHoursWeekly,
		ReviewHoursWeekly:   req.ReviewHoursWeekly,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save profile")
	}
	if s.onChange != nil {
		s.onChange(userID)
	}
	return profile, nil
}

func marshalJSONB(value interface{}, empty string) (types.JSONText, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		raw = []byte(empty)
	}
	return types.JSONText(raw), nil
}
