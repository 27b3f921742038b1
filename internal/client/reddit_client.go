package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"reddit-explorer/internal/config"
	"reddit-explorer/internal/httpx"
)

// RedditClient builds Reddit JSON endpoint URLs and fetches them through
// the retrying client. It holds no per-request state and is safe for
// concurrent use.
type RedditClient struct {
	client  *httpx.Client
	baseURL string
}

func NewRedditClient(cfg *config.Config) (*RedditClient, error) {
	rotator, err := httpx.NewProxyRotator(cfg.ProxyURLs)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy rotator: %w", err)
	}

	for i, proxyURL := range cfg.ProxyURLs {
		log.Printf("Proxy #%d: %s", i+1, httpx.MaskProxyURL(proxyURL))
	}

	httpClient := &http.Client{
		Transport: httpx.NewFingerprintingTransport(rotator),
		Timeout:   cfg.RequestTimeout,
	}

	retrying := httpx.NewClient(
		cfg.MaxRetries,
		cfg.RetryBaseDelay,
		cfg.RequestTimeout,
		httpx.WithHTTPClient(httpClient),
		httpx.WithUserAgent(cfg.UserAgent),
	)

	return &RedditClient{
		client:  retrying,
		baseURL: cfg.RedditBaseURL,
	}, nil
}

func (r *RedditClient) FetchJSON(ctx context.Context, rawURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	_, bodyBytes, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetchJSON request: %w", err)
	}

	return bodyBytes, nil
}

func (r *RedditClient) SearchURL(query string, limit int, after string, sort string) string {
	if sort == "" {
		sort = "hot"
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", sort)
	params.Set("type", "link")
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	if after != "" {
		params.Set("after", after)
	}

	return fmt.Sprintf("%s/search.json?%s", r.baseURL, params.Encode())
}

func (r *RedditClient) PostDetailsURL(postID string) string {
	return fmt.Sprintf("%s/by_id/t3_%s.json", r.baseURL, postID)
}

func (r *RedditClient) CommentsURL(postID string, limit int) string {
	baseURL := fmt.Sprintf("%s/comments/%s.json", r.baseURL, postID)
	if limit > 0 {
		baseURL += fmt.Sprintf("?limit=%d", limit)
	}
	return baseURL
}
