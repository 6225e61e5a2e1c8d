package dbmodels

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

type DBAdminUser struct {
	Id                string             `db:"id"`
	Email             string             `db:"email"`
	PasswordHash      pgtype.Text        `db:"password_hash"`
	CreatedAt         time.Time          `db:"created_at"`
	PasswordUpdatedAt pgtype.Timestamptz `db:"password_updated_at"`
}

const TABLE_ADMIN_USERS = "admin_users"

var SelectAdminUserColumn = utils.ColumnList[DBAdminUser]()

func AdaptAdminUser(db DBAdminUser) (models.AdminUser, error) {
	user := models.AdminUser{
		Id:        models.UserId(db.Id),
		Email:     db.Email,
		CreatedAt: db.CreatedAt,
	}
	if db.PasswordHash.Valid {
		user.PasswordHash = &db.PasswordHash.String
	}
	if db.PasswordUpdatedAt.Valid {
		user.PasswordUpdatedAt = &db.PasswordUpdatedAt.Time
	}
	return user, nil
}
