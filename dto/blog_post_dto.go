package dto

import (
	"time"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/pure_utils"
)

type APIBlogPost struct {
	Id        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageUrl  string    `json:"image_url"`
	Keywords  []string  `json:"keywords"`
	Tags      []string  `json:"tags"`
	UserId    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AdaptBlogPostDto(post models.BlogPost) APIBlogPost {
	var userId *string
	if post.UserId != nil {
		id := string(*post.UserId)
		userId = &id
	}
	return APIBlogPost{
		Id:        post.Id,
		Slug:      post.Slug,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		ImageUrl:  post.ImageUrl,
		Keywords:  nonNil(post.Keywords),
		Tags:      nonNil(post.Tags),
		UserId:    userId,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

type APIBlogPostPage struct {
	Posts      []APIBlogPost `json:"posts"`
	TotalCount int           `json:"totalCount"`
}

func AdaptBlogPostPageDto(page models.BlogPostPage) APIBlogPostPage {
	return APIBlogPostPage{
		Posts:      pure_utils.Map(page.Posts, AdaptBlogPostDto),
		TotalCount: page.TotalCount,
	}
}

type BlogPostListQuery struct {
	Slug  string `form:"slug"`
	Tag   string `form:"tag"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type CreateBlogPostBody struct {
	Slug     string     `json:"slug" binding:"required,slug"`
	Title    string     `json:"title" binding:"required"`
	Excerpt  string     `json:"excerpt"`
	Content  string     `json:"content"`
	ImageUrl string     `json:"image_url"`
	Keywords StringList `json:"keywords"`
	Tags     StringList `json:"tags"`
}

func AdaptCreateBlogPostAttributes(body CreateBlogPostBody) models.CreateBlogPostAttributes {
	return models.CreateBlogPostAttributes{
		Slug:     body.Slug,
		Title:    body.Title,
		Excerpt:  body.Excerpt,
		Content:  body.Content,
		ImageUrl: body.ImageUrl,
		Keywords: nonNil(body.Keywords),
		Tags:     nonNil(body.Tags),
	}
}

// UpdateBlogPostBody is a partial update: absent fields are left untouched, null resets a
// field to its empty value.
type UpdateBlogPostBody struct {
	Slug     pure_utils.Null[string]     `json:"slug"`
	Title    pure_utils.Null[string]     `json:"title"`
	Excerpt  pure_utils.Null[string]     `json:"excerpt"`
	Content  pure_utils.Null[string]     `json:"content"`
	ImageUrl pure_utils.Null[string]     `json:"image_url"`
	Keywords pure_utils.Null[StringList] `json:"keywords"`
	Tags     pure_utils.Null[StringList] `json:"tags"`
}

func AdaptUpdateBlogPostAttributes(id string, body UpdateBlogPostBody) models.UpdateBlogPostAttributes {
	return models.UpdateBlogPostAttributes{
		Id:       id,
		Slug:     presentOrNil(body.Slug),
		Title:    presentOrNil(body.Title),
		Excerpt:  presentOrNil(body.Excerpt),
		Content:  presentOrNil(body.Content),
		ImageUrl: presentOrNil(body.ImageUrl),
		Keywords: listOrNil(body.Keywords),
		Tags:     listOrNil(body.Tags),
	}
}

// presentOrNil maps an absent field to nil and an explicit null to the zero value, the
// blog columns being non nullable.
func presentOrNil[T any](n pure_utils.Null[T]) *T {
	if !n.Set {
		return nil
	}
	v := n.Value()
	return &v
}

func listOrNil(n pure_utils.Null[StringList]) *[]string {
	if !n.Set {
		return nil
	}
	list := nonNil(n.Value())
	return &list
}

func nonNil[T ~[]string](list T) []string {
	if list == nil {
		return []string{}
	}
	return []string(list)
}
