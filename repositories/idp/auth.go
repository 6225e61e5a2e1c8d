package idp

import (
	"context"

	"github.com/sitepress/sitepress-backend/models"
)

type TokenRepository interface {
	Issuer() string
	VerifyToken(ctx context.Context, idToken string) (models.IdentityClaims, error)
}
