package models

// Post represents a normalized Reddit post. Search results produce a
// partial "stub" post; a detail fetch may later overwrite its fields.
// swagger:model Post
type Post struct {
	// Reddit post ID
	ID string `json:"id"`
	// Post title
	Title string `json:"title"`
	// Subreddit the post belongs to, without the r/ prefix
	Subreddit string `json:"subreddit"`
	// Creation time as Unix seconds
	CreatedUTC int64 `json:"created_utc"`
	// Full URL to the linked content
	URL string `json:"url"`
	// Post body (selftext, falling back to body for link posts)
	Body string `json:"body"`
	// Post score (upvotes minus downvotes)
	Score int `json:"score"`
	// Author's username
	Author string `json:"author"`
	// Relative permalink on reddit.com
	Permalink string `json:"permalink"`
	// Number of comments reported upstream
	NumComments int `json:"num_comments"`
}

// Merge overwrites p's fields with the non-zero fields of detail,
// keeping stub values where the detail payload was silent.
func (p *Post) Merge(detail Post) {
	if detail.ID != "" {
		p.ID = detail.ID
	}
	if detail.Title != "" && detail.Title != "No title" {
		p.Title = detail.Title
	}
	if detail.Subreddit != "" && detail.Subreddit != "unknown" {
		p.Subreddit = detail.Subreddit
	}
	if detail.CreatedUTC != 0 {
		p.CreatedUTC = detail.CreatedUTC
	}
	if detail.URL != "" {
		p.URL = detail.URL
	}
	if detail.Body != "" {
		p.Body = detail.Body
	}
	if detail.Score != 0 {
		p.Score = detail.Score
	}
	if detail.Author != "" && detail.Author != "unknown" {
		p.Author = detail.Author
	}
	if detail.Permalink != "" {
		p.Permalink = detail.Permalink
	}
	if detail.NumComments != 0 {
		p.NumComments = detail.NumComments
	}
}

// Comment represents a top-level comment on a post. Reply trees are not
// expanded; only the flattened fields are kept.
// swagger:model Comment
type Comment struct {
	// Comment author's username
	Author string `json:"author"`
	// Comment body text
	Body string `json:"body"`
	// Comment score
	Score int `json:"score"`
	// Creation time as Unix seconds
	CreatedUTC int64 `json:"created_utc"`
}

// PostSummary is the result of an AI summary over a post and its comments.
// swagger:model PostSummary
type PostSummary struct {
	// Post ID the summary was generated for
	PostID string `json:"post_id"`
	// Generated summary text
	Summary string `json:"summary"`
	// Title of the summarized post
	PostTitle string `json:"post_title"`
	// Subreddit of the summarized post
	Subreddit string `json:"subreddit"`
}
