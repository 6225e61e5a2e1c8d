package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories/dbmodels"
)

func (repo *SitepressDbRepository) ListAds(ctx context.Context, exec Executor, size *models.AdSize) ([]models.Ad, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAdColumn...).
		From(dbmodels.TABLE_ADS).
		OrderBy("created_at DESC", "id DESC")

	if size != nil {
		query = query.Where(squirrel.Eq{"size": string(*size)})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAd)
}

func (repo *SitepressDbRepository) GetAdById(ctx context.Context, exec Executor, id string) (models.Ad, error) {
	ad, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAdColumn...).
			From(dbmodels.TABLE_ADS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptAd,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.Ad{}, errors.Wrapf(models.ErrAdNotFound, "id %s", id)
	}
	return ad, err
}

func (repo *SitepressDbRepository) CreateAd(ctx context.Context, exec Executor, ad models.Ad) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ADS).
			Columns(
				"id",
				"type",
				"image_url",
				"link_url",
				"alt_text",
				"content",
				"size",
			).
			Values(
				ad.Id,
				string(ad.Type),
				null.StringFromPtr(ad.ImageUrl),
				ad.LinkUrl,
				null.StringFromPtr(ad.AltText),
				null.StringFromPtr(ad.Content),
				string(ad.Size),
			),
	)
	return err
}

// UpdateAd overwrites every column of the ad: shaping may clear fields that were
// not part of the patch.
func (repo *SitepressDbRepository) UpdateAd(ctx context.Context, exec Executor, ad models.Ad) error {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_ADS).
			Where(squirrel.Eq{"id": ad.Id}).
			Set("type", string(ad.Type)).
			Set("image_url", null.StringFromPtr(ad.ImageUrl)).
			Set("link_url", ad.LinkUrl).
			Set("alt_text", null.StringFromPtr(ad.AltText)).
			Set("content", null.StringFromPtr(ad.Content)).
			Set("size", string(ad.Size)).
			Set("updated_at", squirrel.Expr("NOW()")),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(models.ErrAdNotFound, "id %s", ad.Id)
	}
	return nil
}

func (repo *SitepressDbRepository) DeleteAd(ctx context.Context, exec Executor, id string) error {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_ADS).Where(squirrel.Eq{"id": id}),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(models.ErrAdNotFound, "id %s", id)
	}
	return nil
}
