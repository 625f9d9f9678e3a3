// Package migrate implements the database migration command.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"stickybar/internal/infrastructure/config"
	"stickybar/internal/infrastructure/database"
	"stickybar/internal/infrastructure/persistence/models"
	"stickybar/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply the database schema for site configurations, manual reviews and failure logs.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	logger.Info("running migrations", "driver", cfg.Database.Driver)

	if err := database.Get().AutoMigrate(
		&models.SiteConfigurationModel{},
		&models.ManualReviewModel{},
		&models.ProviderFailureLogModel{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed")
	return nil
}
