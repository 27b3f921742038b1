package explorer

import (
	"context"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/parser"
	"reddit-explorer/internal/summary"
)

// ExplorerService is the shared retrieval gateway consumed by both the
// interactive client and the HTTP handlers. Calls are stateless
// request/response: no results are retained between calls.
type ExplorerService interface {
	Search(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error)
	Trending(ctx context.Context, limit int, after string) ([]models.Post, string, error)
	PostDetails(ctx context.Context, postID string) (models.Post, bool, error)
	Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error)
	Summarize(ctx context.Context, postID string) (models.PostSummary, error)
}

type explorerService struct {
	client       client.RedditClientInterface
	parser       parser.ParserInterface
	summarizer   summary.Summarizer
	commentLimit int
}

func NewExplorerService(c client.RedditClientInterface, p parser.ParserInterface, s summary.Summarizer, commentLimit int) ExplorerService {
	if commentLimit <= 0 {
		commentLimit = 100
	}
	return &explorerService{
		client:       c,
		parser:       p,
		summarizer:   s,
		commentLimit: commentLimit,
	}
}

func (s *explorerService) Search(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
	return s.search(ctx, "search", query, limit, after, "hot")
}

// Trending reuses the search endpoint with the catch-all query sorted
// by top, mirroring Reddit's trending feed.
func (s *explorerService) Trending(ctx context.Context, limit int, after string) ([]models.Post, string, error) {
	return s.search(ctx, "trending", "all", limit, after, "top")
}

func (s *explorerService) search(ctx context.Context, op, query string, limit int, after, sort string) ([]models.Post, string, error) {
	data, err := s.client.FetchJSON(ctx, s.client.SearchURL(query, limit, after, sort))
	if err != nil {
		return nil, "", &FetchError{Op: op, Err: err}
	}

	posts, nextAfter := s.parser.ParseSearch(data)
	return posts, nextAfter, nil
}

func (s *explorerService) PostDetails(ctx context.Context, postID string) (models.Post, bool, error) {
	data, err := s.client.FetchJSON(ctx, s.client.PostDetailsURL(postID))
	if err != nil {
		return models.Post{}, false, &FetchError{Op: "post details", Err: err}
	}

	post, found := s.parser.ParsePostDetails(data)
	return post, found, nil
}

func (s *explorerService) Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	data, err := s.client.FetchJSON(ctx, s.client.CommentsURL(postID, limit))
	if err != nil {
		return nil, &FetchError{Op: "comments", Err: err}
	}

	return s.parser.ParseComments(data), nil
}

// Summarize fetches the post and its comments, then asks the inference
// endpoint for a summary. Fetches run sequentially; there is no fan-out.
func (s *explorerService) Summarize(ctx context.Context, postID string) (models.PostSummary, error) {
	post, found, err := s.PostDetails(ctx, postID)
	if err != nil {
		return models.PostSummary{}, err
	}
	if !found {
		return models.PostSummary{}, &FetchError{Op: "summarize", Err: ErrPostNotFound}
	}

	comments, err := s.Comments(ctx, postID, s.commentLimit)
	if err != nil {
		return models.PostSummary{}, err
	}

	commentBodies := make([]string, 0, len(comments))
	for _, c := range comments {
		commentBodies = append(commentBodies, c.Body)
	}

	text, err := s.summarizer.GenerateSummary(ctx, post.Body, commentBodies)
	if err != nil {
		return models.PostSummary{}, err
	}

	return models.PostSummary{
		PostID:    postID,
		Summary:   text,
		PostTitle: post.Title,
		Subreddit: post.Subreddit,
	}, nil
}
