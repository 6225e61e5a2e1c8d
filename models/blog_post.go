package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

type BlogPost struct {
	Id        string
	Slug      string
	Title     string
	Excerpt   string
	Content   string
	ImageUrl  string
	Keywords  []string
	Tags      []string
	UserId    *UserId
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateBlogPostAttributes struct {
	Slug     string
	Title    string
	Excerpt  string
	Content  string
	ImageUrl string
	Keywords []string
	Tags     []string
	UserId   UserId
}

// UpdateBlogPostAttributes only carries the fields present in the update request.
type UpdateBlogPostAttributes struct {
	Id       string
	Slug     *string
	Title    *string
	Excerpt  *string
	Content  *string
	ImageUrl *string
	Keywords *[]string
	Tags     *[]string
}

func (attr UpdateBlogPostAttributes) IsEmpty() bool {
	return attr.Slug == nil && attr.Title == nil && attr.Excerpt == nil &&
		attr.Content == nil && attr.ImageUrl == nil && attr.Keywords == nil && attr.Tags == nil
}

type BlogPostFilters struct {
	Tag string
}

type BlogPostPage struct {
	Posts      []BlogPost
	TotalCount int
}

var slugRegexp = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func IsValidSlug(slug string) bool {
	return slugRegexp.MatchString(slug)
}

func (attr *CreateBlogPostAttributes) Normalize() {
	attr.Slug = strings.TrimSpace(attr.Slug)
	attr.Title = strings.TrimSpace(attr.Title)
	attr.Keywords = NormalizeStringList(attr.Keywords)
	attr.Tags = NormalizeStringList(attr.Tags)
}

func (attr CreateBlogPostAttributes) Validate() error {
	if !IsValidSlug(attr.Slug) {
		return errors.Wrapf(BadParameterError, "invalid slug %q", attr.Slug)
	}
	if attr.Title == "" {
		return errors.Wrap(BadParameterError, "title is required")
	}
	return nil
}

func (attr *UpdateBlogPostAttributes) Normalize() {
	if attr.Slug != nil {
		s := strings.TrimSpace(*attr.Slug)
		attr.Slug = &s
	}
	if attr.Title != nil {
		t := strings.TrimSpace(*attr.Title)
		attr.Title = &t
	}
	if attr.Keywords != nil {
		k := NormalizeStringList(*attr.Keywords)
		attr.Keywords = &k
	}
	if attr.Tags != nil {
		t := NormalizeStringList(*attr.Tags)
		attr.Tags = &t
	}
}

func (attr UpdateBlogPostAttributes) Validate() error {
	if attr.Slug != nil && !IsValidSlug(*attr.Slug) {
		return errors.Wrapf(BadParameterError, "invalid slug %q", *attr.Slug)
	}
	if attr.Title != nil && *attr.Title == "" {
		return errors.Wrap(BadParameterError, "title cannot be empty")
	}
	return nil
}

// NormalizeStringList trims every entry and drops the empty ones, keeping order.
func NormalizeStringList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitCommaList turns the comma separated input of the admin forms into a list.
func SplitCommaList(s string) []string {
	return NormalizeStringList(strings.Split(s, ","))
}
