package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/mocks"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
)

func TestUploadImage_roundTrip(t *testing.T) {
	ctx := context.Background()
	uc := UploadUsecase{
		blobRepository: repositories.NewBlobRepository("mem://"),
		publicApiUrl:   "https://api.example.com/",
	}

	uploaded, err := uc.UploadImage(ctx, "Cover.PNG", "image/png", 4, strings.NewReader("\x89PNG"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uploaded.Key, "images/"))
	assert.True(t, strings.HasSuffix(uploaded.Key, ".png"))
	assert.Equal(t, "https://api.example.com/api/uploads/"+uploaded.Key, uploaded.Url)

	blob, err := uc.GetImage(ctx, strings.TrimPrefix(uploaded.Key, "images/"))
	require.NoError(t, err)
	defer blob.ReadCloser.Close()
	content, err := io.ReadAll(blob.ReadCloser)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(content))
	assert.Equal(t, "image/png", blob.ContentType)
}

func TestUploadImage_relativeUrlWithoutPublicApiUrl(t *testing.T) {
	blobs := new(mocks.BlobRepository)
	blobs.On("PutBlob", mock.Anything, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).Return(nil)
	uc := UploadUsecase{blobRepository: blobs}

	uploaded, err := uc.UploadImage(context.Background(), "photo", "image/jpeg", 10, strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/"+uploaded.Key, uploaded.Url)
	blobs.AssertExpectations(t)
}

func TestUploadImage_rejectsNonImages(t *testing.T) {
	blobs := new(mocks.BlobRepository)
	uc := UploadUsecase{blobRepository: blobs}

	_, err := uc.UploadImage(context.Background(), "notes.txt", "text/plain", 3, strings.NewReader("abc"))
	assert.ErrorIs(t, err, models.BadParameterError)
	blobs.AssertNotCalled(t, "PutBlob", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImage_rejectsLargeFiles(t *testing.T) {
	uc := UploadUsecase{blobRepository: new(mocks.BlobRepository)}

	_, err := uc.UploadImage(context.Background(), "big.png", "image/png",
		models.MaxImageUploadSize+1, strings.NewReader(""))
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestGetImage(t *testing.T) {
	uc := UploadUsecase{blobRepository: new(mocks.BlobRepository)}

	for _, name := range []string{"", "../secret", "nested/file.png"} {
		_, err := uc.GetImage(context.Background(), name)
		assert.ErrorIs(t, err, models.BadParameterError, name)
	}

	_, err := (&UploadUsecase{}).GetImage(context.Background(), "a.png")
	assert.ErrorIs(t, err, models.NotFoundError)
}
