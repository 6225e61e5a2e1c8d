package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/dto"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/pure_utils"
	"github.com/sitepress/sitepress-backend/usecases"
)

type adUriInput struct {
	Id string `uri:"id" binding:"required"`
}

func handleListAds(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var query dto.AdListQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		var size *models.AdSize
		if query.Size != "" {
			s := models.AdSize(query.Size)
			size = &s
		}

		usecase := uc.NewAdUsecase()
		ads, err := usecase.ListAds(ctx, size)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(ads, dto.AdaptAdDto))
	}
}

func handleGetAd(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri adUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewAdUsecase()
		ad, err := usecase.GetAd(ctx, uri.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptAdDto(ad))
	}
}

func handleCreateAd(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateAdBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewAdUsecase()
		ad, err := usecase.CreateAd(ctx, dto.AdaptCreateAd(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptAdDto(ad))
	}
}

func handleUpdateAd(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri adUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		var data dto.UpdateAdBody
		if err := c.ShouldBindJSON(&data); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewAdUsecase()
		ad, err := usecase.UpdateAd(ctx, dto.AdaptUpdateAdAttributes(uri.Id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptAdDto(ad))
	}
}

func handleDeleteAd(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uri adUriInput
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindingError(ctx, c, err)
			return
		}

		usecase := uc.NewAdUsecase()
		err := usecase.DeleteAd(ctx, uri.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
