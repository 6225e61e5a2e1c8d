package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepress/sitepress-backend/client"
	"github.com/sitepress/sitepress-backend/models"
)

func TestClientAgainstServer(t *testing.T) {
	ctx := context.Background()
	e := httpexpect.Default(t, testServer.URL)

	accessToken := e.POST("/auth/login").
		WithJSON(map[string]any{"email": adminEmail, "password": adminPassword}).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("access_token").String().Raw()
	auth := e.Builder(func(req *httpexpect.Request) {
		req.WithHeader("Authorization", "Bearer "+accessToken)
	})

	auth.POST("/api/blog").
		WithJSON(map[string]any{"slug": "client-post", "title": "Client post", "tags": []string{"Client"}}).
		Expect().Status(http.StatusCreated)
	auth.POST("/api/ads").
		WithJSON(map[string]any{
			"type":     "image",
			"imageUrl": "https://cdn.example.com/banner.png",
			"altText":  "banner",
			"linkUrl":  "https://sponsor.example.com",
			"size":     "floating",
		}).
		Expect().Status(http.StatusCreated)

	c := client.New(testServer.URL, client.WithRevalidate(0))

	post := c.GetBlogPostBySlug(ctx, "client-post")
	require.NotNil(t, post)
	assert.Equal(t, "Client post", post.Title)

	assert.Nil(t, c.GetBlogPostBySlug(ctx, "does-not-exist"))

	posts := c.GetBlogPosts(ctx, 1, 10, "Client")
	assert.Equal(t, 1, posts.TotalCount)

	assert.Contains(t, c.GetUniqueTags(ctx), "Client")

	ad := c.FetchAd(ctx, models.AdSizeFloating)
	require.NotNil(t, ad)
	assert.Equal(t, "banner", ad.AltText.String)
	assert.Nil(t, c.FetchAd(ctx, models.AdSizePopup))
}
