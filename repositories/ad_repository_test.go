package repositories

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories/dbmodels"
)

func TestListAds_bySize(t *testing.T) {
	ctx := context.Background()
	exec := newMockExecutor(t)
	repo := NewSitepressDbRepository()

	row := dbmodels.DBAd{
		Id:       "ad-id",
		Type:     "text",
		LinkUrl:  "https://example.com",
		Content:  null.StringFrom("Buy now"),
		ImageUrl: null.String{},
		AltText:  null.String{},
		Size:     "small",
	}

	exec.ExpectQuery(`SELECT .+ FROM ads WHERE size = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("small").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectAdColumn).AddRow(
			row.Id, row.Type, row.ImageUrl, row.LinkUrl, row.AltText, row.Content, row.Size,
			row.CreatedAt, row.UpdatedAt,
		))

	size := models.AdSizeSmall
	ads, err := repo.ListAds(ctx, exec, &size)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, models.AdTypeText, ads[0].Type)
	assert.Nil(t, ads[0].ImageUrl)
	require.NotNil(t, ads[0].Content)
	assert.Equal(t, "Buy now", *ads[0].Content)
	assert.NoError(t, exec.ExpectationsWereMet())
}

func TestUpdateAd_writesEveryColumn(t *testing.T) {
	ctx := context.Background()
	exec := newMockExecutor(t)
	repo := NewSitepressDbRepository()
	content := "Hello"

	exec.ExpectExec(`UPDATE ads SET type = \$1, image_url = \$2, link_url = \$3, alt_text = \$4, content = \$5, size = \$6, updated_at = NOW\(\) WHERE id = \$7`).
		WithArgs("text", null.String{}, "https://example.com", null.String{}, null.StringFrom(content), "popup", "ad-id").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateAd(ctx, exec, models.Ad{
		Id:      "ad-id",
		Type:    models.AdTypeText,
		LinkUrl: "https://example.com",
		Content: &content,
		Size:    models.AdSizePopup,
	})
	assert.NoError(t, err)
	assert.NoError(t, exec.ExpectationsWereMet())
}

func TestDeleteAd_missing(t *testing.T) {
	ctx := context.Background()
	exec := newMockExecutor(t)
	repo := NewSitepressDbRepository()

	exec.ExpectExec(`DELETE FROM ads WHERE id = \$1`).
		WithArgs("ad-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteAd(ctx, exec, "ad-id")
	assert.True(t, errors.Is(err, models.ErrAdNotFound))
}
