package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/dto"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/usecases"
)

type blogPostUriInput struct {
	Id string `uri:"id" binding:"required"`
}

// handleListBlogPosts serves one page of posts, or a single post when a slug is given.
func handleListBlogPosts(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.BlogPostListQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewBlogPostUsecase()

		if query.Slug != "" {
			post, err := usecase.GetBlogPostBySlug(ctx, query.Slug)
			if presentError(ctx, c, err) {
				return
			}
			c.JSON(http.StatusOK, dto.AdaptBlogPostDto(post))
			return
		}

		page, err := models.NewPageRequest(query.Page, query.Limit)
		if presentError(ctx, c, err) {
			return
		}

		posts, err := usecase.ListBlogPosts(ctx, models.BlogPostFilters{Tag: query.Tag}, page)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptBlogPostPageDto(posts))
	}
}

func handleGetBlogPost(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri blogPostUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewBlogPostUsecase()
		post, err := usecase.GetBlogPostById(ctx, uri.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptBlogPostDto(post))
	}
}

func handleCreateBlogPost(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateBlogPostBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewBlogPostUsecase()
		post, err := usecase.CreateBlogPost(ctx, dto.AdaptCreateBlogPostAttributes(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptBlogPostDto(post))
	}
}

func handleUpdateBlogPost(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri blogPostUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		var data dto.UpdateBlogPostBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewBlogPostUsecase()
		post, err := usecase.UpdateBlogPost(ctx, dto.AdaptUpdateBlogPostAttributes(uri.Id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptBlogPostDto(post))
	}
}

func handleDeleteBlogPost(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri blogPostUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewBlogPostUsecase()
		err := usecase.DeleteBlogPost(ctx, uri.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
