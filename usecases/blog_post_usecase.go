package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
	"github.com/sitepress/sitepress-backend/usecases/tracking"
	"github.com/sitepress/sitepress-backend/utils"
)

type BlogPostRepository interface {
	ListBlogPosts(ctx context.Context, exec repositories.Executor, filters models.BlogPostFilters,
		page models.PageRequest) ([]models.BlogPost, error)
	CountBlogPosts(ctx context.Context, exec repositories.Executor, filters models.BlogPostFilters) (int, error)
	GetBlogPostById(ctx context.Context, exec repositories.Executor, id string) (models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, exec repositories.Executor, slug string) (models.BlogPost, error)
	CreateBlogPost(ctx context.Context, exec repositories.Executor, newPostId string,
		attributes models.CreateBlogPostAttributes) error
	UpdateBlogPost(ctx context.Context, exec repositories.Executor, attributes models.UpdateBlogPostAttributes) error
	DeleteBlogPost(ctx context.Context, exec repositories.Executor, id string) error
}

type BlogPostUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         BlogPostRepository
}

// ListBlogPosts reads one page of posts and the total count for the same filter.
// Both queries run concurrently on separate connections.
func (usecase *BlogPostUsecase) ListBlogPosts(
	ctx context.Context,
	filters models.BlogPostFilters,
	page models.PageRequest,
) (models.BlogPostPage, error) {
	var (
		posts []models.BlogPost
		count int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		posts, err = usecase.repository.ListBlogPosts(groupCtx, usecase.executorFactory.NewExecutor(), filters, page)
		return err
	})
	group.Go(func() error {
		var err error
		count, err = usecase.repository.CountBlogPosts(groupCtx, usecase.executorFactory.NewExecutor(), filters)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.BlogPostPage{}, err
	}

	return models.BlogPostPage{Posts: posts, TotalCount: count}, nil
}

func (usecase *BlogPostUsecase) GetBlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	return usecase.repository.GetBlogPostBySlug(ctx, usecase.executorFactory.NewExecutor(), slug)
}

func (usecase *BlogPostUsecase) GetBlogPostById(ctx context.Context, id string) (models.BlogPost, error) {
	if err := utils.ValidateUuid(id); err != nil {
		return models.BlogPost{}, err
	}
	return usecase.repository.GetBlogPostById(ctx, usecase.executorFactory.NewExecutor(), id)
}

func (usecase *BlogPostUsecase) CreateBlogPost(
	ctx context.Context,
	attributes models.CreateBlogPostAttributes,
) (models.BlogPost, error) {
	creds, err := utils.MustCredentialsFromCtx(ctx)
	if err != nil {
		return models.BlogPost{}, err
	}
	attributes.UserId = creds.UserId

	attributes.Normalize()
	if err := attributes.Validate(); err != nil {
		return models.BlogPost{}, err
	}

	post, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.BlogPost, error) {
			newPostId := uuid.NewString()
			if err := usecase.repository.CreateBlogPost(ctx, tx, newPostId, attributes); err != nil {
				return models.BlogPost{}, err
			}
			return usecase.repository.GetBlogPostById(ctx, tx, newPostId)
		})
	if err != nil {
		return models.BlogPost{}, err
	}

	utils.MetricContentMutations.WithLabelValues("blog_post", "create").Inc()
	tracking.TrackEvent(ctx, models.AnalyticsBlogPostCreated, map[string]interface{}{
		"blog_post_id": post.Id,
	})

	return post, nil
}

func (usecase *BlogPostUsecase) UpdateBlogPost(
	ctx context.Context,
	attributes models.UpdateBlogPostAttributes,
) (models.BlogPost, error) {
	if err := utils.ValidateUuid(attributes.Id); err != nil {
		return models.BlogPost{}, err
	}

	attributes.Normalize()
	if err := attributes.Validate(); err != nil {
		return models.BlogPost{}, err
	}

	post, err := executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.BlogPost, error) {
			if attributes.IsEmpty() {
				return usecase.repository.GetBlogPostById(ctx, tx, attributes.Id)
			}
			if err := usecase.repository.UpdateBlogPost(ctx, tx, attributes); err != nil {
				return models.BlogPost{}, err
			}
			return usecase.repository.GetBlogPostById(ctx, tx, attributes.Id)
		})
	if err != nil {
		return models.BlogPost{}, err
	}

	utils.MetricContentMutations.WithLabelValues("blog_post", "update").Inc()
	tracking.TrackEvent(ctx, models.AnalyticsBlogPostUpdated, map[string]interface{}{
		"blog_post_id": post.Id,
	})

	return post, nil
}

func (usecase *BlogPostUsecase) DeleteBlogPost(ctx context.Context, id string) error {
	if err := utils.ValidateUuid(id); err != nil {
		return err
	}

	if err := usecase.repository.DeleteBlogPost(ctx, usecase.executorFactory.NewExecutor(), id); err != nil {
		return errors.Wrap(err, "error deleting blog post")
	}

	utils.MetricContentMutations.WithLabelValues("blog_post", "delete").Inc()
	tracking.TrackEvent(ctx, models.AnalyticsBlogPostDeleted, map[string]interface{}{
		"blog_post_id": id,
	})
	return nil
}
