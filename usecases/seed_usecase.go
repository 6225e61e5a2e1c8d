package usecases

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/usecases/auth"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
	"github.com/sitepress/sitepress-backend/utils"
)

type SeedUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	userRepository  AdminUserRepository
}

// SeedAdminUser creates the first admin from the environment. It does nothing when
// the email is already registered.
func (usecase *SeedUseCase) SeedAdminUser(ctx context.Context, email, password string) error {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	_, err := usecase.userRepository.GetAdminUserByEmail(ctx, exec, email)
	if err == nil {
		logger.DebugContext(ctx, "admin user already exists", slog.String("email", email))
		return nil
	}
	if !errors.Is(err, models.ErrUnknownUser) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "invalid CREATE_ADMIN_PASSWORD")
	}

	err = usecase.userRepository.CreateAdminUser(ctx, exec, models.UserId(uuid.NewString()), models.CreateAdminUser{
		Email:        email,
		PasswordHash: &hash,
	})
	if errors.Is(err, models.ConflictError) {
		return nil
	}
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "admin user created", slog.String("email", models.NormalizeEmail(email)))
	return nil
}
