package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/axis-planner/axis-api/api/swagger"
	"github.com/axis-planner/axis-api/internal/handler"
	"github.com/axis-planner/axis-api/internal/middleware"
	"github.com/axis-planner/axis-api/internal/repository"
	"github.com/axis-planner/axis-api/internal/service"
	"github.com/axis-planner/axis-api/pkg/cache"
	"github.com/axis-planner/axis-api/pkg/config"
	"github.com/axis-planner/axis-api/pkg/database"
	"github.com/axis-planner/axis-api/pkg/jobs"
	"github.com/axis-planner/axis-api/pkg/logger"
	corsmiddleware "github.com/axis-planner/axis-api/pkg/middleware/cors"
	reqidmiddleware "github.com/axis-planner/axis-api/pkg/middleware/requestid"
)

// @title Axis Planner API
// @version 1.0.0
// @description Personalized time-blocking scheduler
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}

	taskRepo := repository.NewTaskRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	planRepo := repository.NewPlanRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close()

	metricsSvc := service.NewMetricsService()
	plannerSvc := service.NewPlannerService(taskRepo, profileRepo, planRepo, cacheRepo, metricsSvc, logr, cfg.Planner, nil)

	replanQueue := jobs.NewQueue("replan", func(ctx context.Context, job jobs.Job) error {
		_, err := plannerSvc.Rebuild(ctx, job.Key)
		return err
	}, jobs.QueueConfig{
		Workers:        cfg.Planner.Workers,
		MaxRetries:     2,
		RetryDelay:     time.Second,
		DebounceWindow: cfg.Planner.DebounceWindow,
		Logger:         logr,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	replanQueue.Start(ctx)
	defer replanQueue.Stop()

	triggerReplan := func(userID string) {
		job := jobs.Job{ID: uuid.NewString(), Type: "replan", Key: userID}
		if err := replanQueue.Debounce(job); err != nil {
			logr.Sugar().Warnw("failed to queue replan", "user_id", userID, "error", err)
		}
	}

	validate := validator.New()
	taskSvc := service.NewTaskService(taskRepo, validate, logr, triggerReplan)
	profileSvc := service.NewProfileService(profileRepo, validate, logr, triggerReplan)

	taskHandler := handler.NewTaskHandler(taskSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	plannerHandler := handler.NewPlannerHandler(plannerSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.RequireUser())
	api.Use(middleware.WithResponseMeta())
	{
		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", taskHandler.Create)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.POST("/tasks/:id/complete", taskHandler.Complete)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)

		api.GET("/plan", plannerHandler.Current)
		api.POST("/plan/rebalance", plannerHandler.Rebalance)
		if cfg.Export.Enabled {
			api.GET("/plan/export", plannerHandler.Export)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
