// Package feed fetches subreddit listings from the public JSON API.
package feed

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mgerb/subreddit-viewer/model"
)

const (
	DefaultBaseURL   = "https://api.reddit.com"
	DefaultSubreddit = "pics"
	DefaultUserAgent = "subreddit-viewer:client"
)

// Fetcher returns the posts of one tab of the feed.
type Fetcher interface {
	Fetch(ctx context.Context, tab model.Tab) ([]model.Post, error)
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Client requests listings for a single subreddit.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Subreddit string
	UserAgent string
	Limit     int
}

// NewClient returns a client with its own transport bounded by timeout.
func NewClient(baseURL, subreddit string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Subreddit: subreddit,
		UserAgent: DefaultUserAgent,
		HTTP: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// ListingURL returns the endpoint for tab, e.g. https://api.reddit.com/r/pics/hot.json
func (c *Client) ListingURL(tab model.Tab) string {
	u := c.BaseURL + "/r/" + url.PathEscape(c.Subreddit) + "/" + tab.Suffix() + ".json"
	if c.Limit > 0 {
		u += "?limit=" + strconv.Itoa(c.Limit)
	}
	return u
}

// Fetch gets the listing for tab and converts it to posts.
func (c *Client) Fetch(ctx context.Context, tab model.Tab) ([]model.Post, error) {
	body, err := c.get(ctx, c.ListingURL(tab))
	if err != nil {
		return nil, err
	}

	posts, err := ConvertPosts(body)
	if err != nil {
		return nil, fmt.Errorf("convert %s listing: %w", tab, err)
	}
	return posts, nil
}

func (c *Client) get(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Code: resp.StatusCode, URL: u}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", u, err)
	}
	return string(body), nil
}
