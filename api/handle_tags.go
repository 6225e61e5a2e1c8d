package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/usecases"
)

func handleListTags(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewTagUsecase()
		tags, err := usecase.ListUniqueTags(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}
