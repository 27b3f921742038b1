package client

import (
	"context"
	"encoding/json"
)

type RedditClientInterface interface {
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)
	SearchURL(query string, limit int, after string, sort string) string
	PostDetailsURL(postID string) string
	CommentsURL(postID string, limit int) string
}
