package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/axis-planner/axis-api/internal/models"
	"github.com/axis-planner/axis-api/pkg/config"
	appErrors "github.com/axis-planner/axis-api/pkg/errors"
)

type plannerTaskLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
}

type plannerProfileReader interface {
	GetByUser(ctx context.Context, userID string) (*models.UserProfile, error)
}

type planStore interface {
	ReplaceForUser(ctx context.Context, userID string, blocks []models.ScheduledBlock) error
}

type planCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// PlannerService recomputes and serves the time-blocked schedule for a user.
// Recomputations for the same user are serialized; distinct users never share
// state.
type PlannerService struct {
	tasks    plannerTaskLister
	profiles plannerProfileReader
	plans    planStore
	cache    planCache
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      config.PlannerConfig
	clock    func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPlannerService wires the planner dependencies. A nil clock defaults to
// time.Now; tests inject fixed instants.
func NewPlannerService(
	tasks plannerTaskLister,
	profiles plannerProfileReader,
	plans planStore,
	cache planCache,
	metrics *MetricsService,
	logger *zap.Logger,
	cfg config.PlannerConfig,
	clock func() time.Time,
) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = 14
	}
	if cfg.SlotMinutes <= 0 {
		cfg.SlotMinutes = 30
	}
	if cfg.DayStartHour <= 0 {
		cfg.DayStartHour = 6
	}
	if cfg.DayEndHour <= 0 || cfg.DayEndHour > 24 {
		cfg.DayEndHour = 24
	}
	return &PlannerService{
		tasks:    tasks,
		profiles: profiles,
		plans:    plans,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		clock:    clock,
		locks:    map[string]*sync.Mutex{},
	}
}

// Rebuild recomputes the plan for the user from scratch, persists the
// scheduled blocks and refreshes the cache. Placement problems are reported
// in the plan diagnostics, never as errors.
func (s *PlannerService) Rebuild(ctx context.Context, userID string) (*models.Plan, error) {
	if userID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "user id is required")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	started := s.clock()

	profile := models.UserProfile{UserID: userID}
	if s.profiles != nil {
		queryStart := time.Now()
		stored, err := s.profiles.GetByUser(ctx, userID)
		s.metrics.ObserveDBQuery("profile_get", time.Since(queryStart))
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
		}
		if stored != nil {
			profile = *stored
		}
	}

	var tasks []models.Task
	if s.tasks != nil {
		var err error
		queryStart := time.Now()
		tasks, err = s.tasks.ListByUser(ctx, userID)
		s.metrics.ObserveDBQuery("task_list", time.Since(queryStart))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tasks")
		}
	}

	cfg := gridConfig{
		HorizonDays:  s.cfg.HorizonDays,
		SlotMinutes:  s.cfg.SlotMinutes,
		DayStartHour: s.cfg.DayStartHour,
		DayEndHour:   s.cfg.DayEndHour,
		Personal:     PersonalTimeEndOfDay,
	}
	plan := computePlan(decodeProfile(profile), tasks, cfg, s.clock())
	plan.UserID = userID
	for i := range plan.Blocks {
		plan.Blocks[i].UserID = userID
	}

	if s.plans != nil {
		queryStart := time.Now()
		err := s.plans.ReplaceForUser(ctx, userID, plan.Blocks)
		s.metrics.ObserveDBQuery("plan_replace", time.Since(queryStart))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist plan")
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, planCacheKey(userID), plan, s.cfg.CacheTTL); err != nil {
			s.logger.Sugar().Warnw("plan cache write failed", "user_id", userID, "error", err)
		}
	}

	s.metrics.ObservePlanBuild(time.Since(started), plan.Placements)
	s.logPlacements(userID, plan.Placements)
	return &plan, nil
}

// Current returns the cached plan for the user, recomputing on a miss.
// The second return reports whether the plan came from cache.
func (s *PlannerService) Current(ctx context.Context, userID string) (*models.Plan, bool, error) {
	if userID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "user id is required")
	}
	if s.cache != nil {
		var cached models.Plan
		if err := s.cache.Get(ctx, planCacheKey(userID), &cached); err == nil {
			s.metrics.RecordCacheOperation(true, 0)
			return &cached, true, nil
		}
		s.metrics.RecordCacheOperation(false, 0)
	}
	plan, err := s.Rebuild(ctx, userID)
	return plan, false, err
}

func (s *PlannerService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *PlannerService) logPlacements(userID string, placements []models.TaskPlacement) {
	for _, p := range placements {
		switch p.Status {
		case models.PlacementInfeasible:
			s.logger.Sugar().Warnw("task infeasible before deadline",
				"user_id", userID, "task_id", p.TaskID, "task", p.TaskName)
		case models.PlacementPartial:
			s.logger.Sugar().Warnw("task partially scheduled",
				"user_id", userID, "task_id", p.TaskID, "task", p.TaskName,
				"scheduled", p.ScheduledChunks, "required", p.RequiredChunks)
		}
	}
}

func planCacheKey(userID string) string {
	return fmt.Sprintf("plan:%s", userID)
}
