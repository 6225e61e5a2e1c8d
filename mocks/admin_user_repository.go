package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
)

type AdminUserRepository struct {
	mock.Mock
}

func (m *AdminUserRepository) GetAdminUserByEmail(ctx context.Context, exec repositories.Executor, email string) (models.AdminUser, error) {
	args := m.Called(ctx, exec, email)
	return args.Get(0).(models.AdminUser), args.Error(1)
}

func (m *AdminUserRepository) GetAdminUserById(ctx context.Context, exec repositories.Executor, id models.UserId) (models.AdminUser, error) {
	args := m.Called(ctx, exec, id)
	return args.Get(0).(models.AdminUser), args.Error(1)
}

func (m *AdminUserRepository) CreateAdminUser(ctx context.Context, exec repositories.Executor,
	newUserId models.UserId, user models.CreateAdminUser,
) error {
	args := m.Called(ctx, exec, newUserId, user)
	return args.Error(0)
}

func (m *AdminUserRepository) UpdateAdminUserPassword(ctx context.Context, exec repositories.Executor,
	userId models.UserId, passwordHash string,
) error {
	args := m.Called(ctx, exec, userId, passwordHash)
	return args.Error(0)
}

func (m *AdminUserRepository) CreatePasswordResetToken(ctx context.Context, exec repositories.Executor,
	token models.PasswordResetToken,
) error {
	args := m.Called(ctx, exec, token)
	return args.Error(0)
}

func (m *AdminUserRepository) GetPasswordResetTokenByHash(ctx context.Context, exec repositories.Executor,
	tokenHash []byte,
) (models.PasswordResetToken, error) {
	args := m.Called(ctx, exec, tokenHash)
	return args.Get(0).(models.PasswordResetToken), args.Error(1)
}

func (m *AdminUserRepository) MarkPasswordResetTokenUsed(ctx context.Context, exec repositories.Executor,
	id string, usedAt time.Time,
) error {
	args := m.Called(ctx, exec, id, usedAt)
	return args.Error(0)
}
