package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
)

type BlobRepository struct {
	mock.Mock
}

func (m *BlobRepository) GetBlob(ctx context.Context, fileName string) (models.Blob, error) {
	args := m.Called(ctx, fileName)
	return args.Get(0).(models.Blob), args.Error(1)
}

func (m *BlobRepository) PutBlob(ctx context.Context, fileName, contentType string, content io.Reader) error {
	args := m.Called(ctx, fileName, contentType, content)
	return args.Error(0)
}

func (m *BlobRepository) DeleteFile(ctx context.Context, fileName string) error {
	args := m.Called(ctx, fileName)
	return args.Error(0)
}
