package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	logger := utils.LoggerFromContext(ctx)
	_ = c.Error(err)

	switch {
	case errors.Is(err, models.BadParameterError):
		logger.InfoContext(ctx, fmt.Sprintf("BadParameterError: %v", err))
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		logger.InfoContext(ctx, fmt.Sprintf("UnAuthorizedError: %v", err))
		c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ForbiddenError):
		logger.InfoContext(ctx, fmt.Sprintf("ForbiddenError: %v", err))
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, models.NotFoundError):
		logger.InfoContext(ctx, fmt.Sprintf("NotFoundError: %v", err))
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ConflictError):
		logger.InfoContext(ctx, fmt.Sprintf("ConflictError: %v", err))
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, models.TooManyRequestsError):
		logger.InfoContext(ctx, fmt.Sprintf("TooManyRequestsError: %v", err))
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
	default:
		utils.LogAndReportSentryError(ctx, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return true
}

func presentBindingError(ctx context.Context, c *gin.Context, err error) {
	presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
}
