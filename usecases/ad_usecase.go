package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
	"github.com/sitepress/sitepress-backend/usecases/tracking"
	"github.com/sitepress/sitepress-backend/utils"
)

type AdRepository interface {
	ListAds(ctx context.Context, exec repositories.Executor, size *models.AdSize) ([]models.Ad, error)
	GetAdById(ctx context.Context, exec repositories.Executor, id string) (models.Ad, error)
	CreateAd(ctx context.Context, exec repositories.Executor, ad models.Ad) error
	UpdateAd(ctx context.Context, exec repositories.Executor, ad models.Ad) error
	DeleteAd(ctx context.Context, exec repositories.Executor, id string) error
}

type AdUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         AdRepository
}

func (usecase *AdUsecase) ListAds(ctx context.Context, size *models.AdSize) ([]models.Ad, error) {
	if size != nil && !size.IsValid() {
		return nil, errors.Wrapf(models.BadParameterError, "unknown ad size %q", *size)
	}
	return usecase.repository.ListAds(ctx, usecase.executorFactory.NewExecutor(), size)
}

func (usecase *AdUsecase) GetAd(ctx context.Context, id string) (models.Ad, error) {
	if err := utils.ValidateUuid(id); err != nil {
		return models.Ad{}, err
	}
	return usecase.repository.GetAdById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *AdUsecase) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	ad = ad.Shape()
	if err := ad.Validate(); err != nil {
		return models.Ad{}, err
	}

	created, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Ad, error) {
			ad.Id = uuid.NewString()
			if err := usecase.repository.CreateAd(ctx, tx, ad); err != nil {
				return models.Ad{}, err
			}
			return usecase.repository.GetAdById(ctx, tx, ad.Id)
		})
	if err != nil {
		return models.Ad{}, err
	}

	utils.MetricContentMutations.WithLabelValues("ad", "create").Inc()
	tracking.TrackEvent(ctx, models.AnalyticsAdCreated, map[string]interface{}{
		"ad_id": created.Id,
		"type":  created.Type,
		"size":  created.Size,
	})
	return created, nil
}

// UpdateAd merges the patch onto the stored ad, then shapes and validates the result
// as a whole: changing the type clears the fields of the previous variant.
func (usecase *AdUsecase) UpdateAd(ctx context.Context, patch models.UpdateAdAttributes) (models.Ad, error) {
	if err := utils.ValidateUuid(patch.Id); err != nil {
		return models.Ad{}, err
	}

	updated, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.Ad, error) {
			current, err := usecase.repository.GetAdById(ctx, tx, patch.Id)
			if err != nil {
				return models.Ad{}, err
			}

			next := current.Merge(patch).Shape()
			if err := next.Validate(); err != nil {
				return models.Ad{}, err
			}

			if err := usecase.repository.UpdateAd(ctx, tx, next); err != nil {
				return models.Ad{}, err
			}
			return usecase.repository.GetAdById(ctx, tx, patch.Id)
		})
	if err != nil {
		return models.Ad{}, err
	}

	utils.MetricContentMutations.WithLabelValues("ad", "update").Inc()
	tracking.TrackEvent(ctx, models.AnalyticsAdUpdated, map[string]interface{}{
		"ad_id": updated.Id,
	})
	return updated, nil
}

func (usecase *AdUsecase) DeleteAd(ctx context.Context, id string) error {
	if err := utils.ValidateUuid(id); err != nil {
		return err
	}

	if err := usecase.repository.DeleteAd(ctx, usecase.executorFactory.NewExecutor(), id); err != nil {
		return errors.Wrap(err, "error deleting advertisement")
	}

	utils.MetricContentMutations.WithLabelValues("ad", "delete").Inc()
	tracking.TrackEvent(ctx, models.AnalyticsAdDeleted, map[string]interface{}{
		"ad_id": id,
	})
	return nil
}
