package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/mocks"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
)

func TestListUniqueTags(t *testing.T) {
	repo := new(mocks.BlogPostRepository)
	repo.On("ListBlogPostTags", mock.Anything, mock.Anything).
		Return([]string{"web", " Go ", "", "api", "Go"}, nil)

	uc := TagUsecase{
		executorFactory: executor_factory.NewExecutorFactoryStub(),
		repository:      repo,
	}

	tags, err := uc.ListUniqueTags(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"api", "Go", "web"}, tags)
}
