package repositories

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

type BlobRepository interface {
	GetBlob(ctx context.Context, fileName string) (models.Blob, error)
	PutBlob(ctx context.Context, fileName, contentType string, content io.Reader) error
	DeleteFile(ctx context.Context, fileName string) error
}

type blobRepository struct {
	bucketUrl string
	bucket    *blob.Bucket
	m         sync.Mutex
}

// NewBlobRepository opens buckets lazily, on first use. Supported urls are the
// gocloud.dev ones: file://, mem://, gs:// and s3://.
func NewBlobRepository(bucketUrl string) BlobRepository {
	return &blobRepository{bucketUrl: bucketUrl}
}

func (repository *blobRepository) openBlobBucket(ctx context.Context) (*blob.Bucket, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"repositories.BlobRepository.openBlobBucket",
		trace.WithAttributes(attribute.String("bucket", repository.bucketUrl)),
	)
	defer span.End()

	repository.m.Lock()
	defer repository.m.Unlock()

	if repository.bucket != nil {
		return repository.bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, repository.bucketUrl)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", repository.bucketUrl)
	}

	ok, err := bucket.IsAccessible(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check bucket accessibility %s", repository.bucketUrl)
	} else if !ok {
		return nil, errors.Newf("bucket %s is not accessible", repository.bucketUrl)
	}

	repository.bucket = bucket
	return bucket, nil
}

func (repository *blobRepository) GetBlob(ctx context.Context, fileName string) (models.Blob, error) {
	bucket, err := repository.openBlobBucket(ctx)
	if err != nil {
		return models.Blob{}, err
	}

	reader, err := bucket.NewReader(ctx, fileName, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return models.Blob{}, errors.Wrapf(models.NotFoundError,
			"file %s does not exist in bucket %s", fileName, repository.bucketUrl)
	}
	if err != nil {
		return models.Blob{}, errors.Wrapf(err, "failed to read object %s/%s", repository.bucketUrl, fileName)
	}

	return models.Blob{
		FileName:    fileName,
		ContentType: reader.ContentType(),
		ReadCloser:  reader,
	}, nil
}

func (repository *blobRepository) PutBlob(ctx context.Context, fileName, contentType string, content io.Reader) error {
	bucket, err := repository.openBlobBucket(ctx)
	if err != nil {
		return err
	}

	writer, err := bucket.NewWriter(ctx, fileName, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", fileName)
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()
		return errors.Wrapf(err, "failed to write %s", fileName)
	}
	return errors.Wrapf(writer.Close(), "failed to close writer for %s", fileName)
}

func (repository *blobRepository) DeleteFile(ctx context.Context, fileName string) error {
	bucket, err := repository.openBlobBucket(ctx)
	if err != nil {
		return err
	}
	return bucket.Delete(ctx, fileName)
}
