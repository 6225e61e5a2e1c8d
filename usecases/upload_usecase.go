package usecases

import (
	"context"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/usecases/tracking"
)

const imagesPrefix = "images/"

type UploadUsecase struct {
	blobRepository repositories.BlobRepository
	publicApiUrl   string
}

// UploadImage stores an image under a fresh key and returns its public url.
func (usecase *UploadUsecase) UploadImage(
	ctx context.Context,
	fileName, contentType string,
	size int64,
	content io.Reader,
) (models.UploadedImage, error) {
	if usecase.blobRepository == nil {
		return models.UploadedImage{}, errors.New("uploads are not configured: UPLOADS_BUCKET_URL is empty")
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return models.UploadedImage{}, errors.Wrapf(models.ErrUnsupportedUpload, "content type %q", contentType)
	}
	if size > models.MaxImageUploadSize {
		return models.UploadedImage{}, errors.Wrapf(models.BadParameterError,
			"image is larger than %d bytes", models.MaxImageUploadSize)
	}

	key := imagesPrefix + uuid.NewString() + strings.ToLower(imageExtension(fileName, mediaType))
	if err := usecase.blobRepository.PutBlob(ctx, key, mediaType, io.LimitReader(content, models.MaxImageUploadSize)); err != nil {
		return models.UploadedImage{}, err
	}

	tracking.TrackEvent(ctx, models.AnalyticsImageUploaded, map[string]interface{}{
		"key":          key,
		"content_type": mediaType,
	})

	return models.UploadedImage{
		Key: key,
		Url: usecase.imageUrl(key),
	}, nil
}

// GetImage opens an uploaded image. The caller closes the returned reader.
func (usecase *UploadUsecase) GetImage(ctx context.Context, name string) (models.Blob, error) {
	if usecase.blobRepository == nil {
		return models.Blob{}, errors.Wrap(models.NotFoundError, "uploads are not configured")
	}
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return models.Blob{}, errors.Wrapf(models.BadParameterError, "invalid image name %q", name)
	}
	blob, err := usecase.blobRepository.GetBlob(ctx, imagesPrefix+name)
	if err != nil {
		return models.Blob{}, err
	}
	if blob.ContentType == "" {
		blob.ContentType = mime.TypeByExtension(path.Ext(name))
	}
	return blob, nil
}

func (usecase *UploadUsecase) imageUrl(key string) string {
	base := strings.TrimRight(usecase.publicApiUrl, "/")
	if base == "" {
		return "/api/uploads/" + key
	}
	u, err := url.JoinPath(base, "api/uploads", key)
	if err != nil {
		return base + "/api/uploads/" + key
	}
	return u
}

func imageExtension(fileName, mediaType string) string {
	if ext := path.Ext(fileName); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
