package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/dto"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/usecases"
)

const uploadFormField = "file"

func handleUploadImage(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		fileHeader, err := c.FormFile(uploadFormField)
		if err != nil {
			presentError(ctx, c, errors.Wrapf(models.BadParameterError, "missing %q form file: %v", uploadFormField, err))
			return
		}
		file, err := fileHeader.Open()
		if presentError(ctx, c, errors.Wrap(err, "could not open the uploaded file")) {
			return
		}
		defer file.Close()

		usecase := uc.NewUploadUsecase()
		image, err := usecase.UploadImage(ctx, fileHeader.Filename,
			fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptUploadedImageDto(image))
	}
}

func handleGetImage(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewUploadUsecase()
		blob, err := usecase.GetImage(ctx, c.Param("key"))
		if presentError(ctx, c, err) {
			return
		}
		defer blob.ReadCloser.Close()

		c.DataFromReader(http.StatusOK, -1, blob.ContentType, blob.ReadCloser, map[string]string{
			"Cache-Control": "public, max-age=31536000, immutable",
		})
	}
}
