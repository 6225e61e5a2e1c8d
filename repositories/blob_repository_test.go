package repositories

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/models"
)

func TestBlobRepository_memBucket(t *testing.T) {
	ctx := context.Background()
	repo := NewBlobRepository("mem://")

	err := repo.PutBlob(ctx, "images/a.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	b, err := repo.GetBlob(ctx, "images/a.png")
	require.NoError(t, err)
	defer b.ReadCloser.Close()

	content, err := io.ReadAll(b.ReadCloser)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
	assert.Equal(t, "image/png", b.ContentType)

	require.NoError(t, repo.DeleteFile(ctx, "images/a.png"))
	_, err = repo.GetBlob(ctx, "images/a.png")
	assert.True(t, errors.Is(err, models.NotFoundError))
}
