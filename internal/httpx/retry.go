package httpx

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client executes HTTP requests with bounded exponential-backoff retry.
// Transport errors, 429 and 5xx responses are retried up to maxRetries
// additional attempts (total attempts = maxRetries + 1) with delays of
// baseDelay, 2*baseDelay, 4*baseDelay, ... between attempts. Any other
// 4xx fails immediately without consuming retries.
type Client struct {
	client     *http.Client
	maxRetries int
	baseDelay  time.Duration
	userAgent  string

	// sleep waits for the given delay or until the context is done.
	// Swapped out in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithUserAgent sets the User-Agent header applied when the request
// carries none.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

// NewClient creates a retrying client. A zero maxRetries disables
// retries entirely; a zero baseDelay defaults to one second.
func NewClient(maxRetries int, baseDelay time.Duration, timeout time.Duration, opts ...Option) *Client {
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	c := &Client{
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		sleep:      sleepContext,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do executes the request, retrying retryable failures. On success the
// response body has already been read (and decompressed if the upstream
// sent gzip) and is returned as a byte slice; resp.Body is reset so the
// response can still be consumed normally.
func (c *Client) Do(req *http.Request) (*http.Response, []byte, error) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	var reqBody []byte
	if req.Body != nil {
		var err error
		reqBody, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("reading request body: %w", err)
		}
		req.Body.Close()
	}

	ctx := req.Context()
	attempts := c.maxRetries + 1
	delay := c.baseDelay

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, delay); err != nil {
				return nil, nil, err
			}
			delay *= 2
			log.Printf("retrying %s (attempt %d/%d)", req.URL, attempt, attempts)
		}

		if reqBody != nil {
			req.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		bodyBytes, err := readBody(resp)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = &StatusError{Code: resp.StatusCode, URL: req.URL.String()}
			continue
		}

		if resp.StatusCode >= 400 {
			return nil, nil, &StatusError{Code: resp.StatusCode, URL: req.URL.String()}
		}

		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		return resp, bodyBytes, nil
	}

	return nil, nil, &RequestError{Attempts: attempts, Err: lastErr}
}

// readBody drains and closes the response body, decompressing gzip
// content. The fingerprinting transport sets Accept-Encoding by hand, so
// net/http does not decompress for us.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decompress response: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	bodyBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return bodyBytes, nil
}
