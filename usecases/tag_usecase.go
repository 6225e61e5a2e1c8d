package usecases

import (
	"context"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
)

type TagRepository interface {
	ListBlogPostTags(ctx context.Context, exec repositories.Executor) ([]string, error)
}

type TagUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      TagRepository
}

// ListUniqueTags returns every tag used by at least one post, deduplicated and sorted.
func (usecase *TagUsecase) ListUniqueTags(ctx context.Context) ([]string, error) {
	tags, err := usecase.repository.ListBlogPostTags(ctx, usecase.executorFactory.NewExecutor())
	if err != nil {
		return nil, err
	}
	return models.AggregateTags([][]string{tags}), nil
}
