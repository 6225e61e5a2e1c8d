package repositories

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/models"
)

func newTestJwtRepository(t *testing.T) *JwtRepository {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewJWTRepository(key)
}

func TestJwtRepository_roundtrip(t *testing.T) {
	repo := newTestJwtRepository(t)
	creds := models.Credentials{UserId: "2c5e9a8e-6a43-4bde-9d53-1c1e0a9f3b11", Email: "admin@example.com"}
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := repo.EncodeSessionToken(expiresAt, creds)
	require.NoError(t, err)

	session, err := repo.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, creds, session.Credentials)
	assert.True(t, expiresAt.Equal(session.ExpiresAt))
	assert.WithinDuration(t, time.Now(), session.IssuedAt, time.Minute)
}

func TestJwtRepository_expired(t *testing.T) {
	repo := newTestJwtRepository(t)
	token, err := repo.EncodeSessionToken(time.Now().Add(-time.Minute),
		models.Credentials{UserId: "id", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = repo.ValidateSessionToken(token)
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}

func TestJwtRepository_otherKey(t *testing.T) {
	token, err := newTestJwtRepository(t).EncodeSessionToken(time.Now().Add(time.Hour),
		models.Credentials{UserId: "id", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = newTestJwtRepository(t).ValidateSessionToken(token)
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}

func TestJwtRepository_garbage(t *testing.T) {
	_, err := newTestJwtRepository(t).ValidateSessionToken("not-a-jwt")
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
}
