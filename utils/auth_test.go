package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sitepress/sitepress-backend/models"
)

type mockSessionValidator struct {
	mock.Mock
}

func (m *mockSessionValidator) ValidateSession(ctx context.Context, token string) (models.Credentials, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Credentials), args.Error(1)
}

func TestAuthentication_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	credentials := models.Credentials{UserId: "user-id", Email: "admin@example.com"}

	tests := []struct {
		name           string
		setupRequest   func(*http.Request)
		setupValidator func(*mockSessionValidator)
		expectedStatus int
	}{
		{
			name: "bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer token")
			},
			setupValidator: func(v *mockSessionValidator) {
				v.On("ValidateSession", mock.Anything, "token").Return(credentials, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "session cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
			},
			setupValidator: func(v *mockSessionValidator) {
				v.On("ValidateSession", mock.Anything, "cookie-token").Return(credentials, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no token",
			setupRequest:   func(r *http.Request) {},
			setupValidator: func(v *mockSessionValidator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed header",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc")
			},
			setupValidator: func(v *mockSessionValidator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired")
			},
			setupValidator: func(v *mockSessionValidator) {
				v.On("ValidateSession", mock.Anything, "expired").
					Return(models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "token is expired"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(mockSessionValidator)
			tt.setupValidator(validator)

			router := gin.New()
			router.GET("/test", NewAuthentication(validator).Middleware, func(c *gin.Context) {
				creds, ok := CredentialsFromCtx(c.Request.Context())
				assert.True(t, ok)
				assert.Equal(t, credentials, creds)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			validator.AssertExpectations(t)
		})
	}
}

func TestParseAuthorizationBearerHeader(t *testing.T) {
	header := http.Header{}
	token, err := ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Empty(t, token)

	header.Set("Authorization", "Bearer abc.def")
	token, err = ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	header.Set("Authorization", "Bearer ")
	_, err = ParseAuthorizationBearerHeader(header)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
