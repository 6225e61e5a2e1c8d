package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sitepress/sitepress-backend/mocks"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/usecases/executor_factory"
	"github.com/sitepress/sitepress-backend/utils"
)

type BlogPostUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.BlogPostRepository
	executorFactory    executor_factory.ExecutorFactoryStub
	transactionFactory executor_factory.TransactionFactoryStub

	ctx    context.Context
	userId models.UserId
	postId string
}

func (suite *BlogPostUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.BlogPostRepository)
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.transactionFactory = executor_factory.NewTransactionFactoryStub(suite.executorFactory)

	suite.userId = models.UserId(uuid.NewString())
	suite.postId = uuid.NewString()
	suite.ctx = utils.StoreCredentialsInContext(context.Background(), models.Credentials{
		UserId: suite.userId,
		Email:  "admin@example.com",
	})
}

func (suite *BlogPostUsecaseTestSuite) makeUsecase() *BlogPostUsecase {
	return &BlogPostUsecase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		repository:         suite.repository,
	}
}

func (suite *BlogPostUsecaseTestSuite) AssertExpectations() {
	suite.repository.AssertExpectations(suite.T())
}

func TestBlogPostUsecase(t *testing.T) {
	suite.Run(t, new(BlogPostUsecaseTestSuite))
}

func (suite *BlogPostUsecaseTestSuite) TestListBlogPosts() {
	filters := models.BlogPostFilters{Tag: "go"}
	page := models.PageRequest{Page: 2, Limit: 9}
	posts := []models.BlogPost{{Id: suite.postId, Slug: "hello"}}

	suite.repository.On("ListBlogPosts", mock.Anything, mock.Anything, filters, page).Return(posts, nil)
	suite.repository.On("CountBlogPosts", mock.Anything, mock.Anything, filters).Return(10, nil)

	result, err := suite.makeUsecase().ListBlogPosts(suite.ctx, filters, page)

	suite.NoError(err)
	suite.Equal(models.BlogPostPage{Posts: posts, TotalCount: 10}, result)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestListBlogPosts_countFails() {
	suite.repository.On("ListBlogPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.BlogPost{}, nil)
	suite.repository.On("CountBlogPosts", mock.Anything, mock.Anything, mock.Anything).
		Return(0, errors.New("db down"))

	_, err := suite.makeUsecase().ListBlogPosts(suite.ctx, models.BlogPostFilters{}, models.PageRequest{Page: 1, Limit: 9})
	suite.Error(err)
}

func (suite *BlogPostUsecaseTestSuite) TestGetBlogPostById_invalidId() {
	_, err := suite.makeUsecase().GetBlogPostById(suite.ctx, "not-a-uuid")
	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestCreateBlogPost() {
	attributes := models.CreateBlogPostAttributes{
		Slug:  " hello-world ",
		Title: "Hello",
		Tags:  []string{" go ", ""},
	}
	expected := models.CreateBlogPostAttributes{
		Slug:     "hello-world",
		Title:    "Hello",
		Keywords: []string{},
		Tags:     []string{"go"},
		UserId:   suite.userId,
	}
	stored := models.BlogPost{Id: suite.postId, Slug: "hello-world", UserId: &suite.userId}

	var newId string
	suite.repository.On("CreateBlogPost", suite.ctx, mock.Anything, mock.AnythingOfType("string"), expected).
		Run(func(args mock.Arguments) { newId = args.String(2) }).
		Return(nil)
	suite.repository.On("GetBlogPostById", suite.ctx, mock.Anything, mock.AnythingOfType("string")).
		Return(stored, nil)

	post, err := suite.makeUsecase().CreateBlogPost(suite.ctx, attributes)

	suite.NoError(err)
	suite.Equal(stored, post)
	suite.NoError(utils.ValidateUuid(newId))
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestCreateBlogPost_anonymous() {
	_, err := suite.makeUsecase().CreateBlogPost(context.Background(), models.CreateBlogPostAttributes{
		Slug:  "hello",
		Title: "Hello",
	})
	suite.ErrorIs(err, models.UnAuthorizedError)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestCreateBlogPost_invalidSlug() {
	_, err := suite.makeUsecase().CreateBlogPost(suite.ctx, models.CreateBlogPostAttributes{
		Slug:  "Hello World",
		Title: "Hello",
	})
	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestCreateBlogPost_duplicateSlug() {
	suite.repository.On("CreateBlogPost", suite.ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(models.ErrDuplicateSlug)

	_, err := suite.makeUsecase().CreateBlogPost(suite.ctx, models.CreateBlogPostAttributes{
		Slug:  "hello",
		Title: "Hello",
	})
	suite.ErrorIs(err, models.ConflictError)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestUpdateBlogPost() {
	title := "  New title "
	normalized := "New title"
	stored := models.BlogPost{Id: suite.postId, Title: normalized}

	suite.repository.On("UpdateBlogPost", suite.ctx, mock.Anything, models.UpdateBlogPostAttributes{
		Id:    suite.postId,
		Title: &normalized,
	}).Return(nil)
	suite.repository.On("GetBlogPostById", suite.ctx, mock.Anything, suite.postId).Return(stored, nil)

	post, err := suite.makeUsecase().UpdateBlogPost(suite.ctx, models.UpdateBlogPostAttributes{
		Id:    suite.postId,
		Title: &title,
	})

	suite.NoError(err)
	suite.Equal(stored, post)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestUpdateBlogPost_emptyPatch() {
	stored := models.BlogPost{Id: suite.postId}
	suite.repository.On("GetBlogPostById", suite.ctx, mock.Anything, suite.postId).Return(stored, nil)

	post, err := suite.makeUsecase().UpdateBlogPost(suite.ctx, models.UpdateBlogPostAttributes{Id: suite.postId})

	suite.NoError(err)
	suite.Equal(stored, post)
	suite.repository.AssertNotCalled(suite.T(), "UpdateBlogPost", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BlogPostUsecaseTestSuite) TestUpdateBlogPost_notFound() {
	title := "New"
	suite.repository.On("UpdateBlogPost", suite.ctx, mock.Anything, mock.Anything).Return(models.ErrBlogPostNotFound)

	_, err := suite.makeUsecase().UpdateBlogPost(suite.ctx, models.UpdateBlogPostAttributes{
		Id:    suite.postId,
		Title: &title,
	})
	suite.ErrorIs(err, models.NotFoundError)
}

func (suite *BlogPostUsecaseTestSuite) TestDeleteBlogPost() {
	suite.repository.On("DeleteBlogPost", suite.ctx, mock.Anything, suite.postId).Return(nil)

	err := suite.makeUsecase().DeleteBlogPost(suite.ctx, suite.postId)
	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *BlogPostUsecaseTestSuite) TestDeleteBlogPost_notFound() {
	suite.repository.On("DeleteBlogPost", suite.ctx, mock.Anything, suite.postId).Return(models.ErrBlogPostNotFound)

	err := suite.makeUsecase().DeleteBlogPost(suite.ctx, suite.postId)
	suite.ErrorIs(err, models.ErrBlogPostNotFound)
}
