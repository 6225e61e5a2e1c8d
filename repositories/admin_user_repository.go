package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories/dbmodels"
)

func (repo *SitepressDbRepository) GetAdminUserByEmail(ctx context.Context, exec Executor, email string) (models.AdminUser, error) {
	user, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAdminUserColumn...).
			From(dbmodels.TABLE_ADMIN_USERS).
			Where(squirrel.Eq{"email": models.NormalizeEmail(email)}).
			Where(squirrel.Eq{"deleted_at": nil}),
		dbmodels.AdaptAdminUser,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.AdminUser{}, errors.Wrapf(models.ErrUnknownUser, "email %s", email)
	}
	return user, err
}

func (repo *SitepressDbRepository) GetAdminUserById(ctx context.Context, exec Executor, id models.UserId) (models.AdminUser, error) {
	user, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAdminUserColumn...).
			From(dbmodels.TABLE_ADMIN_USERS).
			Where(squirrel.Eq{"id": string(id)}).
			Where(squirrel.Eq{"deleted_at": nil}),
		dbmodels.AdaptAdminUser,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.AdminUser{}, errors.Wrapf(models.ErrUnknownUser, "id %s", id)
	}
	return user, err
}

func (repo *SitepressDbRepository) CreateAdminUser(
	ctx context.Context,
	exec Executor,
	newUserId models.UserId,
	user models.CreateAdminUser,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ADMIN_USERS).
			Columns("id", "email", "password_hash").
			Values(string(newUserId), models.NormalizeEmail(user.Email), user.PasswordHash),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ErrDuplicateEmail, "email %s", user.Email)
	}
	return err
}

func (repo *SitepressDbRepository) UpdateAdminUserPassword(
	ctx context.Context,
	exec Executor,
	userId models.UserId,
	passwordHash string,
) error {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_ADMIN_USERS).
			Set("password_hash", passwordHash).
			Set("password_updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": string(userId)}).
			Where(squirrel.Eq{"deleted_at": nil}),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(models.ErrUnknownUser, "id %s", userId)
	}
	return nil
}
