package idp

import (
	"context"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/models"
)

type verifierMock struct {
	mock.Mock
}

func (m *verifierMock) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	token, _ := args.Get(0).(*auth.Token)
	return token, args.Error(1)
}

func TestFirebaseClient_VerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("verified email", func(t *testing.T) {
		verifier := new(verifierMock)
		verifier.On("VerifyIDToken", ctx, "token").Return(&auth.Token{
			Issuer: "https://securetoken.google.com/project",
			Claims: map[string]any{"email": "Admin@Example.com", "email_verified": true},
		}, nil)

		claims, err := NewFirebaseClient("project", verifier).VerifyToken(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, models.IdentityClaims{
			Issuer:        "https://securetoken.google.com/project",
			Email:         "admin@example.com",
			EmailVerified: true,
		}, claims)
	})

	t.Run("email from identities", func(t *testing.T) {
		verifier := new(verifierMock)
		verifier.On("VerifyIDToken", ctx, "token").Return(&auth.Token{
			Issuer: "https://securetoken.google.com/project",
			Claims: map[string]any{},
			Firebase: auth.FirebaseInfo{
				Identities: map[string]any{"email": []any{"admin@example.com"}},
			},
		}, nil)

		claims, err := NewFirebaseClient("project", verifier).VerifyToken(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.False(t, claims.EmailVerified)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		verifier := new(verifierMock)
		verifier.On("VerifyIDToken", ctx, "token").Return(&auth.Token{
			Issuer: "https://securetoken.google.com/other",
			Claims: map[string]any{"email": "admin@example.com"},
		}, nil)

		_, err := NewFirebaseClient("project", verifier).VerifyToken(ctx, "token")
		assert.True(t, errors.Is(err, models.UnAuthorizedError))
	})

	t.Run("verification failure", func(t *testing.T) {
		verifier := new(verifierMock)
		verifier.On("VerifyIDToken", ctx, "token").Return(nil, errors.New("expired"))

		_, err := NewFirebaseClient("project", verifier).VerifyToken(ctx, "token")
		assert.True(t, errors.Is(err, models.UnAuthorizedError))
	})
}
