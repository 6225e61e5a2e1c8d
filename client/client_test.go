package client

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

const baseUrl = "http://site.test"

func newClient(opts ...Option) *Client {
	c := New(baseUrl+"/", opts...)
	gock.InterceptClient(c.httpClient)
	return c
}

func TestGetBlogPosts(t *testing.T) {
	defer gock.Off()

	gock.New(baseUrl).
		Get("/api/blog").
		MatchParam("page", "2").
		MatchParam("limit", "9").
		MatchParam("tag", "go").
		Reply(http.StatusOK).
		JSON(map[string]any{
			"posts":      []map[string]any{{"id": "1", "slug": "hello", "title": "Hello"}},
			"totalCount": 10,
		})

	page := newClient().GetBlogPosts(context.Background(), 2, 9, "go")
	assert.Equal(t, 10, page.TotalCount)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "hello", page.Posts[0].Slug)
	assert.True(t, gock.IsDone())
}

func TestGetBlogPosts_errorIsLoggedAndEmptied(t *testing.T) {
	defer gock.Off()

	gock.New(baseUrl).
		Get("/api/blog").
		Reply(http.StatusInternalServerError).
		JSON(map[string]string{"error": "database is down"})

	var logs bytes.Buffer
	ctx := utils.StoreLoggerInContext(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	page := newClient().GetBlogPosts(ctx, 1, 9, "")
	assert.Equal(t, 0, page.TotalCount)
	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Posts)
	assert.Contains(t, logs.String(), "500 - database is down")
}

func TestGetBlogPostBySlug(t *testing.T) {
	defer gock.Off()

	gock.New(baseUrl).
		Get("/api/blog").
		MatchParam("slug", "missing").
		Reply(http.StatusNotFound).
		BodyString("not json")

	var logs bytes.Buffer
	ctx := utils.StoreLoggerInContext(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	assert.Nil(t, newClient().GetBlogPostBySlug(ctx, "missing"))
	assert.Contains(t, logs.String(), "404 - Not Found")
}

func TestGetUniqueTags_cached(t *testing.T) {
	defer gock.Off()

	gock.New(baseUrl).
		Get("/api/tags").
		Times(1).
		Reply(http.StatusOK).
		JSON([]string{"api", "go"})

	c := newClient()
	assert.Equal(t, []string{"api", "go"}, c.GetUniqueTags(context.Background()))
	// served from the cache, gock would fail the second call otherwise
	assert.Equal(t, []string{"api", "go"}, c.GetUniqueTags(context.Background()))
	assert.True(t, gock.IsDone())
}

func TestGetUniqueTags_networkError(t *testing.T) {
	defer gock.Off()
	gock.DisableNetworking()
	defer gock.EnableNetworking()

	c := newClient(WithRevalidate(0))
	assert.Equal(t, []string{}, c.GetUniqueTags(context.Background()))
}

func TestFetchAd(t *testing.T) {
	defer gock.Off()

	gock.New(baseUrl).
		Get("/api/ads").
		MatchParam("size", "popup").
		Reply(http.StatusOK).
		JSON([]map[string]any{
			{"id": "first", "type": "text", "content": "Hi", "imageUrl": nil, "size": "popup", "linkUrl": "https://example.com"},
			{"id": "second", "type": "text", "content": "Ho", "size": "popup", "linkUrl": "https://example.com"},
		})
	gock.New(baseUrl).
		Get("/api/ads").
		MatchParam("size", "small").
		Reply(http.StatusOK).
		JSON([]any{})

	c := newClient(WithRevalidate(time.Minute))
	ad := c.FetchAd(context.Background(), models.AdSizePopup)
	require.NotNil(t, ad)
	assert.Equal(t, "first", ad.Id)
	assert.Equal(t, "Hi", ad.Content.String)
	assert.False(t, ad.ImageUrl.Valid)

	assert.Nil(t, c.FetchAd(context.Background(), models.AdSizeSmall))
}
