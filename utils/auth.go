package utils

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/sitepress/sitepress-backend/models"
)

const SessionCookieName = "session"

type sessionValidator interface {
	ValidateSession(ctx context.Context, token string) (models.Credentials, error)
}

type Authentication struct {
	validator sessionValidator
}

func NewAuthentication(validator sessionValidator) Authentication {
	return Authentication{validator: validator}
}

// Middleware rejects requests without a valid session. The session token is read
// from the Authorization header first, then from the session cookie.
func (a Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := SessionTokenFromRequest(c.Request)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": models.UnAuthorizedError.Error()})
		return
	}

	credentials, err := a.validator.ValidateSession(ctx, token)
	if err != nil {
		if !errors.Is(err, models.UnAuthorizedError) {
			LogAndReportSentryError(ctx, err)
		}
		_ = c.Error(errors.Wrap(err, "validator.ValidateSession error"))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": models.UnAuthorizedError.Error()})
		return
	}

	newContext := StoreCredentialsInContext(ctx, credentials)
	logger := LoggerFromContext(newContext).With(slog.String("Email", credentials.Email))
	c.Request = c.Request.WithContext(StoreLoggerInContext(newContext, logger))
	c.Next()
}

func SessionTokenFromRequest(r *http.Request) (string, error) {
	token, err := ParseAuthorizationBearerHeader(r.Header)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "no session token")
	}
	return cookie.Value, nil
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || token == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed token")
	}
	return token, nil
}
