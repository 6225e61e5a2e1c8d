package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
)

type AdRepository struct {
	mock.Mock
}

func (m *AdRepository) ListAds(ctx context.Context, exec repositories.Executor, size *models.AdSize) ([]models.Ad, error) {
	args := m.Called(ctx, exec, size)
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *AdRepository) GetAdById(ctx context.Context, exec repositories.Executor, id string) (models.Ad, error) {
	args := m.Called(ctx, exec, id)
	return args.Get(0).(models.Ad), args.Error(1)
}

func (m *AdRepository) CreateAd(ctx context.Context, exec repositories.Executor, ad models.Ad) error {
	args := m.Called(ctx, exec, ad)
	return args.Error(0)
}

func (m *AdRepository) UpdateAd(ctx context.Context, exec repositories.Executor, ad models.Ad) error {
	args := m.Called(ctx, exec, ad)
	return args.Error(0)
}

func (m *AdRepository) DeleteAd(ctx context.Context, exec repositories.Executor, id string) error {
	args := m.Called(ctx, exec, id)
	return args.Error(0)
}
