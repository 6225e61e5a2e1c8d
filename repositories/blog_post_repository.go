package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/repositories/dbmodels"
)

func blogPostFilterQuery(query squirrel.SelectBuilder, filters models.BlogPostFilters) squirrel.SelectBuilder {
	if filters.Tag != "" {
		query = query.Where(squirrel.Expr("tags @> ?", []string{filters.Tag}))
	}
	return query
}

func (repo *SitepressDbRepository) ListBlogPosts(
	ctx context.Context,
	exec Executor,
	filters models.BlogPostFilters,
	page models.PageRequest,
) ([]models.BlogPost, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectBlogPostColumn...).
		From(dbmodels.TABLE_BLOG_POSTS).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	return SqlToListOfModels(ctx, exec, blogPostFilterQuery(query, filters), dbmodels.AdaptBlogPost)
}

func (repo *SitepressDbRepository) CountBlogPosts(
	ctx context.Context,
	exec Executor,
	filters models.BlogPostFilters,
) (int, error) {
	query := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_BLOG_POSTS)

	return SqlToRow(ctx, exec, blogPostFilterQuery(query, filters), func(row pgx.Row) (int, error) {
		var count int
		err := row.Scan(&count)
		return count, err
	})
}

func (repo *SitepressDbRepository) GetBlogPostById(ctx context.Context, exec Executor, id string) (models.BlogPost, error) {
	post, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBlogPostColumn...).
			From(dbmodels.TABLE_BLOG_POSTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptBlogPost,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.BlogPost{}, errors.Wrapf(models.ErrBlogPostNotFound, "id %s", id)
	}
	return post, err
}

func (repo *SitepressDbRepository) GetBlogPostBySlug(ctx context.Context, exec Executor, slug string) (models.BlogPost, error) {
	post, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBlogPostColumn...).
			From(dbmodels.TABLE_BLOG_POSTS).
			Where(squirrel.Eq{"slug": slug}),
		dbmodels.AdaptBlogPost,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.BlogPost{}, errors.Wrapf(models.ErrBlogPostNotFound, "slug %s", slug)
	}
	return post, err
}

func (repo *SitepressDbRepository) CreateBlogPost(
	ctx context.Context,
	exec Executor,
	newPostId string,
	attributes models.CreateBlogPostAttributes,
) error {
	var userId *string
	if attributes.UserId != "" {
		id := string(attributes.UserId)
		userId = &id
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_BLOG_POSTS).
			Columns(
				"id",
				"slug",
				"title",
				"excerpt",
				"content",
				"image_url",
				"keywords",
				"tags",
				"user_id",
			).
			Values(
				newPostId,
				attributes.Slug,
				attributes.Title,
				attributes.Excerpt,
				attributes.Content,
				attributes.ImageUrl,
				nonNilList(attributes.Keywords),
				nonNilList(attributes.Tags),
				userId,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ErrDuplicateSlug, "slug %s", attributes.Slug)
	}
	return err
}

func (repo *SitepressDbRepository) UpdateBlogPost(
	ctx context.Context,
	exec Executor,
	attributes models.UpdateBlogPostAttributes,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_BLOG_POSTS).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if attributes.Slug != nil {
		query = query.Set("slug", *attributes.Slug)
	}
	if attributes.Title != nil {
		query = query.Set("title", *attributes.Title)
	}
	if attributes.Excerpt != nil {
		query = query.Set("excerpt", *attributes.Excerpt)
	}
	if attributes.Content != nil {
		query = query.Set("content", *attributes.Content)
	}
	if attributes.ImageUrl != nil {
		query = query.Set("image_url", *attributes.ImageUrl)
	}
	if attributes.Keywords != nil {
		query = query.Set("keywords", nonNilList(*attributes.Keywords))
	}
	if attributes.Tags != nil {
		query = query.Set("tags", nonNilList(*attributes.Tags))
	}

	affected, err := ExecBuilder(ctx, exec, query)
	if IsUniqueViolationError(err) {
		return errors.Wrapf(models.ErrDuplicateSlug, "slug %s", *attributes.Slug)
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(models.ErrBlogPostNotFound, "id %s", attributes.Id)
	}
	return nil
}

func (repo *SitepressDbRepository) DeleteBlogPost(ctx context.Context, exec Executor, id string) error {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_BLOG_POSTS).Where(squirrel.Eq{"id": id}),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(models.ErrBlogPostNotFound, "id %s", id)
	}
	return nil
}

// ListBlogPostTags returns the distinct raw tags across all posts, unsorted.
func (repo *SitepressDbRepository) ListBlogPostTags(ctx context.Context, exec Executor) ([]string, error) {
	query, args, err := NewQueryBuilder().
		Select("DISTINCT unnest(tags) AS tag").
		From(dbmodels.TABLE_BLOG_POSTS).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func nonNilList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
