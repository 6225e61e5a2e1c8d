package dbmodels

import (
	"time"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

type DBBlogPost struct {
	Id        string    `db:"id"`
	Slug      string    `db:"slug"`
	Title     string    `db:"title"`
	Excerpt   string    `db:"excerpt"`
	Content   string    `db:"content"`
	ImageUrl  string    `db:"image_url"`
	Keywords  []string  `db:"keywords"`
	Tags      []string  `db:"tags"`
	UserId    *string   `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_BLOG_POSTS = "blog_posts"

var SelectBlogPostColumn = utils.ColumnList[DBBlogPost]()

func AdaptBlogPost(db DBBlogPost) (models.BlogPost, error) {
	post := models.BlogPost{
		Id:        db.Id,
		Slug:      db.Slug,
		Title:     db.Title,
		Excerpt:   db.Excerpt,
		Content:   db.Content,
		ImageUrl:  db.ImageUrl,
		Keywords:  nonNilList(db.Keywords),
		Tags:      nonNilList(db.Tags),
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
	if db.UserId != nil {
		userId := models.UserId(*db.UserId)
		post.UserId = &userId
	}
	return post, nil
}

func nonNilList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
