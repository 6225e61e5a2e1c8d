package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories/dbmodels"
)

func TestGetPasswordResetTokenByHash(t *testing.T) {
	ctx := context.Background()
	exec := newMockExecutor(t)
	repo := NewSitepressDbRepository()

	hash := []byte("hashed-token")
	expiresAt := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	createdAt := expiresAt.Add(-time.Hour)

	exec.ExpectQuery(`SELECT .+ FROM password_reset_tokens WHERE token_hash = \$1 FOR UPDATE`).
		WithArgs(hash).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPasswordResetTokenColumn).AddRow(
			"token-id", "user-id", hash, expiresAt, pgtype.Timestamptz{}, createdAt,
		))

	token, err := repo.GetPasswordResetTokenByHash(ctx, exec, hash)
	require.NoError(t, err)
	assert.Equal(t, "token-id", token.Id)
	assert.Equal(t, models.UserId("user-id"), token.UserId)
	assert.Equal(t, expiresAt, token.ExpiresAt)
	assert.Nil(t, token.UsedAt)
	assert.NoError(t, exec.ExpectationsWereMet())
}

func TestGetPasswordResetTokenByHash_unknown(t *testing.T) {
	ctx := context.Background()
	exec := newMockExecutor(t)
	repo := NewSitepressDbRepository()

	exec.ExpectQuery(`SELECT .+ FROM password_reset_tokens WHERE token_hash = \$1 FOR UPDATE`).
		WithArgs([]byte("unknown")).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectPasswordResetTokenColumn))

	_, err := repo.GetPasswordResetTokenByHash(ctx, exec, []byte("unknown"))
	assert.True(t, errors.Is(err, models.ErrInvalidResetToken))
	assert.True(t, errors.Is(err, models.UnAuthorizedError))
	assert.False(t, errors.Is(err, models.NotFoundError))
	assert.NoError(t, exec.ExpectationsWereMet())
}
