// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	adminUC "stickybar/internal/application/admin/usecases"
	reviewUC "stickybar/internal/application/review/usecases"
	siteApp "stickybar/internal/application/site"
	widgetApp "stickybar/internal/application/widget"
	widgetUC "stickybar/internal/application/widget/usecases"
	"stickybar/internal/domain/review"
	"stickybar/internal/domain/site"
	"stickybar/internal/infrastructure/cache"
	"stickybar/internal/infrastructure/config"
	"stickybar/internal/infrastructure/database"
	"stickybar/internal/infrastructure/email"
	"stickybar/internal/infrastructure/persistence/models"
	"stickybar/internal/infrastructure/providers"
	"stickybar/internal/infrastructure/repository"
	"stickybar/internal/infrastructure/scheduler"
	httpRouter "stickybar/internal/interfaces/http"
	"stickybar/internal/interfaces/http/handlers"
	"stickybar/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the sticky review bar HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		if err := database.Get().AutoMigrate(
			&models.SiteConfigurationModel{},
			&models.ManualReviewModel{},
			&models.ProviderFailureLogModel{},
		); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed")
	}

	// repositories
	var configRepo site.Repository = repository.NewSiteConfigurationRepository(database.Get(), log)
	manualReviewRepo := repository.NewManualReviewRepository(database.Get(), log)
	failureLogRepo := repository.NewProviderFailureLogRepository(database.Get(), log)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Infow("Redis connection established")
		configRepo = cache.NewCachedSiteConfigurationRepository(
			configRepo,
			redisClient,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
	}

	// notification
	var notifier review.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(cfg.Email, log)
	} else {
		notifier = email.NewLogNotifier(log)
	}

	// providers and use cases
	selector := widgetApp.NewProviderSelector(
		providers.NewManualProvider(),
		providers.NewJudgeMeProvider(),
	)
	featurePolicy := siteApp.NewPlanFeaturePolicy(configRepo, log)

	getWidgetDataUseCase := widgetUC.NewGetWidgetDataUseCase(
		configRepo, manualReviewRepo, failureLogRepo, notifier, selector, log)
	getAdminConfigUseCase := adminUC.NewGetAdminConfigUseCase(configRepo, featurePolicy, log)
	saveAdminConfigUseCase := adminUC.NewSaveAdminConfigUseCase(configRepo, log)
	saveManualReviewUseCase := reviewUC.NewSaveManualReviewUseCase(manualReviewRepo, log)
	getManualReviewUseCase := reviewUC.NewGetManualReviewUseCase(manualReviewRepo, log)
	deleteManualReviewUseCase := reviewUC.NewDeleteManualReviewUseCase(manualReviewRepo, log)
	listFailureLogsUseCase := reviewUC.NewListFailureLogsUseCase(failureLogRepo, log)

	// handlers and router
	router := httpRouter.NewRouter(
		handlers.NewWidgetHandler(getWidgetDataUseCase, log),
		handlers.NewAdminConfigHandler(getAdminConfigUseCase, saveAdminConfigUseCase, log),
		handlers.NewReviewHandler(
			saveManualReviewUseCase,
			getManualReviewUseCase,
			deleteManualReviewUseCase,
			listFailureLogsUseCase,
			log,
		),
		handlers.NewHealthHandler(database.Get()),
		log,
	)
	router.SetupRoutes(cfg)

	// background notification sweep
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	sweeper := scheduler.NewNotificationSweeper(
		failureLogRepo,
		configRepo,
		notifier,
		time.Duration(cfg.Notifier.SweepInterval)*time.Second,
		cfg.Notifier.BatchSize,
		log,
	)
	sweeper.Start(sweepCtx)
	defer sweeper.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
