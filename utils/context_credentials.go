package utils

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/models"
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, ok && creds.IsAuthenticated()
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

// MustCredentialsFromCtx is used by write usecases, which are only reachable behind
// the authentication middleware.
func MustCredentialsFromCtx(ctx context.Context) (models.Credentials, error) {
	creds, ok := CredentialsFromCtx(ctx)
	if !ok {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "no credentials in context")
	}
	return creds, nil
}
