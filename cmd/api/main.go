package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsukasa1111/BurgerLendar/config"
	_ "github.com/tsukasa1111/BurgerLendar/docs" // Swagger docs
	"github.com/tsukasa1111/BurgerLendar/internal/httpserver"
	profileRepository "github.com/tsukasa1111/BurgerLendar/internal/profile/repository"
	profileMemory "github.com/tsukasa1111/BurgerLendar/internal/profile/repository/memory"
	profilePostgre "github.com/tsukasa1111/BurgerLendar/internal/profile/repository/postgre"
	profileUC "github.com/tsukasa1111/BurgerLendar/internal/profile/usecase"
	"github.com/tsukasa1111/BurgerLendar/internal/refresh"
	scheduleRepository "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	scheduleMemory "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository/memory"
	schedulePostgre "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository/postgre"
	scheduleUC "github.com/tsukasa1111/BurgerLendar/internal/schedule/usecase"
	"github.com/tsukasa1111/BurgerLendar/internal/timeline"
	"github.com/tsukasa1111/BurgerLendar/pkg/gcalendar"
	"github.com/tsukasa1111/BurgerLendar/pkg/llmprovider"
	"github.com/tsukasa1111/BurgerLendar/pkg/log"
	"github.com/tsukasa1111/BurgerLendar/pkg/postgres"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

// @title       BurgerLendar API
// @description LLM-generated daily schedules with completion tracking, profiles, and iCalendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting BurgerLendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage: PostgreSQL when configured, in-memory otherwise
	var (
		scheduleRepo scheduleRepository.Repository
		profileRepo  profileRepository.Repository
	)
	if cfg.Postgres.DSN != "" {
		db, dbErr := postgres.Connect(cfg.Postgres.DSN)
		if dbErr != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", dbErr)
			return
		}
		if migErr := schedulePostgre.Migrate(db); migErr != nil {
			logger.Error(ctx, "Failed to migrate schedule tables: ", migErr)
			return
		}
		if migErr := profilePostgre.Migrate(db); migErr != nil {
			logger.Error(ctx, "Failed to migrate profile tables: ", migErr)
			return
		}
		scheduleRepo = schedulePostgre.New(db, logger)
		profileRepo = profilePostgre.New(db, logger)
		logger.Info(ctx, "PostgreSQL storage initialized")
	} else {
		scheduleRepo = scheduleMemory.New()
		profileRepo = profileMemory.New()
		logger.Warn(ctx, "POSTGRES_DSN not set, using in-memory storage")
	}

	// 4. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		maxTotalTimeout = 60 * time.Second
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 5. Google Calendar client (optional)
	var calendarSource scheduleUC.CalendarSource
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarSource = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Domains
	profiles := profileUC.New(profileRepo, logger)
	schedules := scheduleUC.New(
		logger,
		scheduleRepo,
		profiles,
		timeline.New(),
		llmManager,
		calendarSource,
		timeutil.NewClock(),
	)

	// 7. Daily refresh job
	if cfg.Refresh.Enabled {
		refresher, refErr := refresh.New(logger, schedules, cfg.Refresh.Spec)
		if refErr != nil {
			logger.Error(ctx, "Failed to initialize refresh scheduler: ", refErr)
			return
		}
		if refErr := refresher.Start(ctx); refErr != nil {
			logger.Error(ctx, "Failed to start refresh scheduler: ", refErr)
			return
		}
		defer refresher.Stop(ctx)
	} else {
		logger.Info(ctx, "Daily refresh disabled")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		AppConfig:   cfg,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ScheduleUC:  schedules,
		ProfileUC:   profiles,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
