package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories/dbmodels"
)

func (repo *SitepressDbRepository) CreatePasswordResetToken(
	ctx context.Context,
	exec Executor,
	token models.PasswordResetToken,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_PASSWORD_RESET_TOKENS).
			Columns("id", "user_id", "token_hash", "expires_at").
			Values(token.Id, string(token.UserId), token.TokenHash, token.ExpiresAt),
	)
	return err
}

// GetPasswordResetTokenByHash locks the row: the token is consumed in the same transaction.
func (repo *SitepressDbRepository) GetPasswordResetTokenByHash(
	ctx context.Context,
	exec Executor,
	tokenHash []byte,
) (models.PasswordResetToken, error) {
	token, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPasswordResetTokenColumn...).
			From(dbmodels.TABLE_PASSWORD_RESET_TOKENS).
			Where(squirrel.Eq{"token_hash": tokenHash}).
			Suffix("FOR UPDATE"),
		dbmodels.AdaptPasswordResetToken,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.PasswordResetToken{}, models.ErrInvalidResetToken
	}
	return token, err
}

func (repo *SitepressDbRepository) MarkPasswordResetTokenUsed(
	ctx context.Context,
	exec Executor,
	id string,
	usedAt time.Time,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_PASSWORD_RESET_TOKENS).
			Set("used_at", usedAt).
			Where(squirrel.Eq{"id": id}),
	)
	return err
}
