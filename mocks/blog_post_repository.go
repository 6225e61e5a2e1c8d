package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories"
)

type BlogPostRepository struct {
	mock.Mock
}

func (m *BlogPostRepository) ListBlogPosts(ctx context.Context, exec repositories.Executor,
	filters models.BlogPostFilters, page models.PageRequest,
) ([]models.BlogPost, error) {
	args := m.Called(ctx, exec, filters, page)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *BlogPostRepository) CountBlogPosts(ctx context.Context, exec repositories.Executor,
	filters models.BlogPostFilters,
) (int, error) {
	args := m.Called(ctx, exec, filters)
	return args.Int(0), args.Error(1)
}

func (m *BlogPostRepository) GetBlogPostById(ctx context.Context, exec repositories.Executor, id string) (models.BlogPost, error) {
	args := m.Called(ctx, exec, id)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

func (m *BlogPostRepository) GetBlogPostBySlug(ctx context.Context, exec repositories.Executor, slug string) (models.BlogPost, error) {
	args := m.Called(ctx, exec, slug)
	return args.Get(0).(models.BlogPost), args.Error(1)
}

func (m *BlogPostRepository) CreateBlogPost(ctx context.Context, exec repositories.Executor,
	newPostId string, attributes models.CreateBlogPostAttributes,
) error {
	args := m.Called(ctx, exec, newPostId, attributes)
	return args.Error(0)
}

func (m *BlogPostRepository) UpdateBlogPost(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateBlogPostAttributes,
) error {
	args := m.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (m *BlogPostRepository) DeleteBlogPost(ctx context.Context, exec repositories.Executor, id string) error {
	args := m.Called(ctx, exec, id)
	return args.Error(0)
}

func (m *BlogPostRepository) ListBlogPostTags(ctx context.Context, exec repositories.Executor) ([]string, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).([]string), args.Error(1)
}
