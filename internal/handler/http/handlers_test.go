package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-explorer/internal/config"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
)

type stubService struct {
	SearchFunc      func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error)
	TrendingFunc    func(ctx context.Context, limit int, after string) ([]models.Post, string, error)
	PostDetailsFunc func(ctx context.Context, postID string) (models.Post, bool, error)
	CommentsFunc    func(ctx context.Context, postID string, limit int) ([]models.Comment, error)
	SummarizeFunc   func(ctx context.Context, postID string) (models.PostSummary, error)
}

func (s *stubService) Search(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
	return s.SearchFunc(ctx, query, limit, after)
}

func (s *stubService) Trending(ctx context.Context, limit int, after string) ([]models.Post, string, error) {
	return s.TrendingFunc(ctx, limit, after)
}

func (s *stubService) PostDetails(ctx context.Context, postID string) (models.Post, bool, error) {
	return s.PostDetailsFunc(ctx, postID)
}

func (s *stubService) Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	return s.CommentsFunc(ctx, postID, limit)
}

func (s *stubService) Summarize(ctx context.Context, postID string) (models.PostSummary, error) {
	return s.SummarizeFunc(ctx, postID)
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSearchRequiresQuery(t *testing.T) {
	h := NewSearchHandler(&stubService{}, 15)
	c, _ := newTestContext(http.MethodGet, "/search")

	err := h.Search(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSearchRejectsInvalidLimit(t *testing.T) {
	h := NewSearchHandler(&stubService{}, 15)

	for _, limit := range []string{"abc", "0", "-3"} {
		c, _ := newTestContext(http.MethodGet, "/search?q=cats&limit="+limit)

		err := h.Search(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "limit=%s", limit)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code, "limit=%s", limit)
	}
}

func TestSearchReturnsPostsAndCursor(t *testing.T) {
	var gotQuery, gotAfter string
	var gotLimit int
	svc := &stubService{
		SearchFunc: func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
			gotQuery, gotLimit, gotAfter = query, limit, after
			return []models.Post{{ID: "a1", Title: "First"}}, "tok1", nil
		},
	}

	h := NewSearchHandler(svc, 15)
	c, rec := newTestContext(http.MethodGet, "/search?q=cats&limit=5&after=prev")

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "cats", gotQuery)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, "prev", gotAfter)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cats", resp.Query)
	assert.Equal(t, "tok1", resp.After)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "a1", resp.Posts[0].ID)
}

func TestSearchUpstreamFailureIsInternalError(t *testing.T) {
	svc := &stubService{
		SearchFunc: func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
			return nil, "", errors.New("upstream exploded")
		},
	}

	h := NewSearchHandler(svc, 15)
	c, _ := newTestContext(http.MethodGet, "/search?q=cats")

	err := h.Search(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestTrendingUsesDefaultLimit(t *testing.T) {
	var gotLimit int
	svc := &stubService{
		TrendingFunc: func(ctx context.Context, limit int, after string) ([]models.Post, string, error) {
			gotLimit = limit
			return []models.Post{{ID: "t1"}}, "", nil
		},
	}

	h := NewTrendingHandler(svc, 15)
	c, rec := newTestContext(http.MethodGet, "/trending")

	require.NoError(t, h.GetTrending(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 15, gotLimit)
}

func TestGetPostFound(t *testing.T) {
	svc := &stubService{
		PostDetailsFunc: func(ctx context.Context, postID string) (models.Post, bool, error) {
			return models.Post{ID: postID, Title: "Found post"}, true, nil
		},
	}

	h := NewPostHandler(svc, 100)
	c, rec := newTestContext(http.MethodGet, "/posts/a1")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.GetPost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "a1", post.ID)
	assert.Equal(t, "Found post", post.Title)
}

func TestGetPostNotFound(t *testing.T) {
	svc := &stubService{
		PostDetailsFunc: func(ctx context.Context, postID string) (models.Post, bool, error) {
			return models.Post{}, false, nil
		},
	}

	h := NewPostHandler(svc, 100)
	c, _ := newTestContext(http.MethodGet, "/posts/missing")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetPost(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestGetCommentsReturnsCount(t *testing.T) {
	var gotLimit int
	svc := &stubService{
		CommentsFunc: func(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
			gotLimit = limit
			return []models.Comment{{Author: "u1", Body: "hi"}, {Author: "u2", Body: "yo"}}, nil
		},
	}

	h := NewPostHandler(svc, 100)
	c, rec := newTestContext(http.MethodGet, "/posts/a1/comments?limit=10")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.GetComments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotLimit)

	var resp models.CommentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.PostID)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Comments, 2)
}

func TestGetSummarySuccess(t *testing.T) {
	svc := &stubService{
		SummarizeFunc: func(ctx context.Context, postID string) (models.PostSummary, error) {
			return models.PostSummary{PostID: postID, Summary: "tidy", PostTitle: "A post"}, nil
		},
	}

	h := NewSummaryHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/posts/a1/summary")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.GetSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PostSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tidy", resp.Summary)
}

func TestGetSummaryMissingPostIs404(t *testing.T) {
	svc := &stubService{
		SummarizeFunc: func(ctx context.Context, postID string) (models.PostSummary, error) {
			return models.PostSummary{}, explorer.ErrPostNotFound
		},
	}

	h := NewSummaryHandler(svc)
	c, _ := newTestContext(http.MethodGet, "/posts/missing/summary")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetSummary(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestHealthReportsConfiguredUpstreams(t *testing.T) {
	cfg := &config.Config{
		RedditBaseURL: "https://www.reddit.com",
		OllamaModel:   "llama3",
	}

	h := NewHealthHandler(cfg)
	c, rec := newTestContext(http.MethodGet, "/health")

	require.NoError(t, h.GetHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "https://www.reddit.com", resp.RedditBaseURL)
	assert.Equal(t, "llama3", resp.Model)
}
