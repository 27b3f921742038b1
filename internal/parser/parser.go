package parser

import (
	"encoding/json"

	"reddit-explorer/internal/models"
)

// RedditParser is the JSON-to-entity boundary. Upstream payloads are
// inherently messy: fields go missing, wrappers vary between object and
// array forms, children arrive without their data object. Every parse
// degrades to an empty result on a shape mismatch instead of failing.
type RedditParser struct{}

func NewRedditParser() *RedditParser {
	return &RedditParser{}
}

// postFields mirrors the upstream field set of a t3 thing.
type postFields struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subreddit   string  `json:"subreddit"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	Selftext    string  `json:"selftext"`
	Body        string  `json:"body"`
	Score       int     `json:"score"`
	Author      string  `json:"author"`
	Permalink   string  `json:"permalink"`
	NumComments int     `json:"num_comments"`
}

func (f postFields) toPost() models.Post {
	body := f.Selftext
	if body == "" {
		body = f.Body
	}

	post := models.Post{
		ID:          f.ID,
		Title:       f.Title,
		Subreddit:   f.Subreddit,
		CreatedUTC:  int64(f.CreatedUTC),
		URL:         f.URL,
		Body:        body,
		Score:       f.Score,
		Author:      f.Author,
		Permalink:   f.Permalink,
		NumComments: f.NumComments,
	}

	if post.Title == "" {
		post.Title = "No title"
	}
	if post.Subreddit == "" {
		post.Subreddit = "unknown"
	}
	if post.Author == "" {
		post.Author = "unknown"
	}

	return post
}

type listing struct {
	Data struct {
		Children []struct {
			Kind string          `json:"kind"`
			Data json.RawMessage `json:"data"`
		} `json:"children"`
		After string `json:"after"`
	} `json:"data"`
}

// ParseSearch extracts posts and the pagination token from a search
// listing. Children missing their data object are skipped; a payload
// without data.children yields an empty slice and an absent cursor.
// The cursor survives a page whose children were all skipped, so
// pagination can continue past a bad page.
func (p *RedditParser) ParseSearch(data json.RawMessage) ([]models.Post, string) {
	var l listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, ""
	}
	if len(l.Data.Children) == 0 {
		return nil, ""
	}

	var posts []models.Post
	for _, child := range l.Data.Children {
		if len(child.Data) == 0 {
			continue
		}

		var fields postFields
		if err := json.Unmarshal(child.Data, &fields); err != nil {
			continue
		}

		posts = append(posts, fields.toPost())
	}

	return posts, l.Data.After
}

// ParsePostDetails normalizes the by_id response. The payload is either
// a listing object or a one-element array wrapping one; both unwrap to
// the same field set. Absent or malformed data reports not-found so the
// caller keeps its stub.
func (p *RedditParser) ParsePostDetails(data json.RawMessage) (models.Post, bool) {
	wrapped := data

	var asArray []json.RawMessage
	if err := json.Unmarshal(data, &asArray); err == nil {
		if len(asArray) == 0 {
			return models.Post{}, false
		}
		wrapped = asArray[0]
	}

	var l listing
	if err := json.Unmarshal(wrapped, &l); err == nil && len(l.Data.Children) > 0 {
		child := l.Data.Children[0]
		if len(child.Data) == 0 {
			return models.Post{}, false
		}

		var fields postFields
		if err := json.Unmarshal(child.Data, &fields); err != nil {
			return models.Post{}, false
		}

		return fields.toPost(), true
	}

	// Some responses carry the fields directly under data.
	var direct struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(wrapped, &direct); err != nil || len(direct.Data) == 0 {
		return models.Post{}, false
	}

	var fields postFields
	if err := json.Unmarshal(direct.Data, &fields); err != nil || fields.ID == "" {
		return models.Post{}, false
	}

	return fields.toPost(), true
}

// ParseComments flattens the comments payload: a two-element array
// whose second element is a listing of t1 things. Only top-level
// comments are kept; reply trees are not expanded.
func (p *RedditParser) ParseComments(data json.RawMessage) []models.Comment {
	var blocks []json.RawMessage
	if err := json.Unmarshal(data, &blocks); err != nil || len(blocks) < 2 {
		return nil
	}

	var l listing
	if err := json.Unmarshal(blocks[1], &l); err != nil {
		return nil
	}

	var comments []models.Comment
	for _, child := range l.Data.Children {
		if child.Kind != "t1" || len(child.Data) == 0 {
			continue
		}

		var fields struct {
			Author     string  `json:"author"`
			Body       string  `json:"body"`
			Score      int     `json:"score"`
			CreatedUTC float64 `json:"created_utc"`
		}
		if err := json.Unmarshal(child.Data, &fields); err != nil {
			continue
		}

		author := fields.Author
		if author == "" {
			author = "unknown"
		}

		comments = append(comments, models.Comment{
			Author:     author,
			Body:       fields.Body,
			Score:      fields.Score,
			CreatedUTC: int64(fields.CreatedUTC),
		})
	}

	return comments
}
