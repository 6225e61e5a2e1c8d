package cmd

import (
	"context"
	"log/slog"

	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/utils"
)

func RunMigrations() error {
	pgConfig := readPgConfig()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(pgConfig)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "error running migrations", slog.String("error", err.Error()))
		return err
	}

	return nil
}
