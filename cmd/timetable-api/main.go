package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mmw1984/timetable/api/swagger"
	"github.com/mmw1984/timetable/internal/handler"
	"github.com/mmw1984/timetable/internal/middleware"
	"github.com/mmw1984/timetable/internal/notify"
	"github.com/mmw1984/timetable/internal/repository"
	"github.com/mmw1984/timetable/internal/runner"
	"github.com/mmw1984/timetable/internal/service"
	"github.com/mmw1984/timetable/internal/timetable"
	"github.com/mmw1984/timetable/pkg/cache"
	"github.com/mmw1984/timetable/pkg/config"
	"github.com/mmw1984/timetable/pkg/database"
	"github.com/mmw1984/timetable/pkg/logger"
	corsmiddleware "github.com/mmw1984/timetable/pkg/middleware/cors"
	reqidmiddleware "github.com/mmw1984/timetable/pkg/middleware/requestid"
)

// @title School Timetable API
// @version 1.0.0
// @description Daily class schedule resolution service
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

	dataset, err := timetable.LoadDataset(cfg.Dataset.Path)
	if err != nil {
		logr.Sugar().Fatalw("failed to load schedule dataset", "path", cfg.Dataset.Path, "error", err)
	}
	engine := timetable.NewEngine(dataset)

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(client)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	// Preferences fall back to process memory when Postgres is out of
	// reach; reminders then live for the session only.
	var prefRepo service.PreferenceRepository = repository.NewMemoryPreferenceRepository()
	if cfg.Database.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Warnw("postgres unavailable, using in-memory preferences", "error", err)
		} else {
			defer db.Close() //nolint:errcheck
			prefRepo = repository.NewPreferenceRepository(db)
		}
	}

	validate := validator.New()
	scheduleSvc := service.NewScheduleService(engine, nil, logr)
	prefSvc := service.NewPreferenceService(prefRepo, cfg.Reminder, validate, logr)
	exportSvc := service.NewExportService(scheduleSvc, logr)

	policy := notify.NewPolicy(notify.NewZapNotifier(logr), logr)
	monitor := notify.NewMonitor(engine, prefSvc, policy, logr)

	if cfg.Runner.Enabled {
		run := runner.New(runner.Config{
			FastInterval: cfg.Runner.FastInterval,
			SlowInterval: cfg.Runner.SlowInterval,
			Logger:       logr,
		}, runner.Hooks{Rebuild: monitor.Rebuild, Tick: monitor.Tick})
		run.Start(context.Background())
		defer run.Stop()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, cacheSvc)
	queryHandler := handler.NewQueryHandler(scheduleSvc)
	prefHandler := handler.NewPreferenceHandler(prefSvc, policy)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/schedule/today", scheduleHandler.Today)
		api.GET("/schedule/date/:date", scheduleHandler.ByDate)
		api.GET("/schedule/current", scheduleHandler.Current)
		api.GET("/schedule/week", scheduleHandler.Week)
		api.GET("/subjects", scheduleHandler.Subjects)
		api.GET("/timetables", scheduleHandler.Timetables)
		api.GET("/query", queryHandler.Query)
		api.GET("/preferences/reminder", prefHandler.Get)
		api.PUT("/preferences/reminder", prefHandler.Update)

		if cfg.Export.Enabled {
			exportHandler := handler.NewExportHandler(exportSvc)
			api.GET("/export/week", exportHandler.Week)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
