package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
)

type IdpTokenRepository struct {
	mock.Mock
}

func (m *IdpTokenRepository) Issuer() string {
	return m.Called().String(0)
}

func (m *IdpTokenRepository) VerifyToken(ctx context.Context, idToken string) (models.IdentityClaims, error) {
	args := m.Called(ctx, idToken)
	return args.Get(0).(models.IdentityClaims), args.Error(1)
}
