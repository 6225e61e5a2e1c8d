package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

type DBPasswordResetToken struct {
	Id        string             `db:"id"`
	UserId    string             `db:"user_id"`
	TokenHash []byte             `db:"token_hash"`
	ExpiresAt time.Time          `db:"expires_at"`
	UsedAt    pgtype.Timestamptz `db:"used_at"`
	CreatedAt time.Time          `db:"created_at"`
}

const TABLE_PASSWORD_RESET_TOKENS = "password_reset_tokens"

var SelectPasswordResetTokenColumn = utils.ColumnList[DBPasswordResetToken]()

func AdaptPasswordResetToken(db DBPasswordResetToken) (models.PasswordResetToken, error) {
	token := models.PasswordResetToken{
		Id:        db.Id,
		UserId:    models.UserId(db.UserId),
		TokenHash: db.TokenHash,
		ExpiresAt: db.ExpiresAt,
		CreatedAt: db.CreatedAt,
	}
	if db.UsedAt.Valid {
		token.UsedAt = &db.UsedAt.Time
	}
	return token, nil
}
