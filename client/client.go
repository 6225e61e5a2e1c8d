// Package client fetches the public site data from the API for page renderers.
// Its helpers never fail: errors are logged and an empty value is returned.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tidwall/gjson"

	"github.com/sitepress/sitepress-backend/dto"
	"github.com/sitepress/sitepress-backend/models"
	"github.com/sitepress/sitepress-backend/utils"
)

const (
	DefaultRevalidate = 60 * time.Second
	cacheSize         = 256
)

type Client struct {
	baseUrl    string
	httpClient *http.Client
	cache      *expirable.LRU[string, []byte]
	revalidate time.Duration
}

type Option func(*Client)

func WithHttpClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRevalidate sets how long responses are served from the cache. Zero disables it.
func WithRevalidate(d time.Duration) Option {
	return func(c *Client) {
		c.revalidate = d
	}
}

func New(baseUrl string, opts ...Option) *Client {
	c := &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		revalidate: DefaultRevalidate,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.revalidate > 0 {
		c.cache = expirable.NewLRU[string, []byte](cacheSize, nil, c.revalidate)
	}
	return c
}

func (c *Client) GetBlogPosts(ctx context.Context, page, limit int, tag string) dto.APIBlogPostPage {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if tag != "" {
		query.Set("tag", tag)
	}

	empty := dto.APIBlogPostPage{Posts: []dto.APIBlogPost{}}
	var out dto.APIBlogPostPage
	if !c.fetchJSON(ctx, "/api/blog?"+query.Encode(), &out) {
		return empty
	}
	if out.Posts == nil {
		out.Posts = []dto.APIBlogPost{}
	}
	return out
}

func (c *Client) GetBlogPostBySlug(ctx context.Context, slug string) *dto.APIBlogPost {
	var post dto.APIBlogPost
	if !c.fetchJSON(ctx, "/api/blog?slug="+url.QueryEscape(slug), &post) {
		return nil
	}
	return &post
}

func (c *Client) GetUniqueTags(ctx context.Context) []string {
	var tags []string
	if !c.fetchJSON(ctx, "/api/tags", &tags) || tags == nil {
		return []string{}
	}
	return tags
}

// FetchAd returns the most recent ad of the given size, or nil.
func (c *Client) FetchAd(ctx context.Context, size models.AdSize) *dto.APIAd {
	var ads []dto.APIAd
	if !c.fetchJSON(ctx, "/api/ads?size="+url.QueryEscape(string(size)), &ads) || len(ads) == 0 {
		return nil
	}
	return &ads[0]
}

func (c *Client) fetchJSON(ctx context.Context, path string, out any) bool {
	body, ok := c.fetch(ctx, path)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "could not decode api response",
			slog.String("path", path), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, bool) {
	logger := utils.LoggerFromContext(ctx)
	fullUrl := c.baseUrl + path

	if c.cache != nil {
		if body, ok := c.cache.Get(fullUrl); ok {
			return body, true
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullUrl, nil)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("invalid request to %s: %v", fullUrl, err))
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("network error fetching from %s: %v", fullUrl, err))
		return nil, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("could not read the response from %s: %v", fullUrl, err))
		return nil, false
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.ErrorContext(ctx, fmt.Sprintf("failed to fetch from %s: %d - %s",
			fullUrl, resp.StatusCode, errorDetail(resp, body)))
		return nil, false
	}

	if c.cache != nil {
		c.cache.Add(fullUrl, body)
	}
	return body, true
}

func errorDetail(resp *http.Response, body []byte) string {
	if gjson.ValidBytes(body) {
		if detail := gjson.GetBytes(body, "error"); detail.Exists() && detail.String() != "" {
			return detail.String()
		}
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return "unknown error"
}
