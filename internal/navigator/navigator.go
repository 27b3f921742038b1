package navigator

import (
	"context"
	"errors"

	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/summary"
)

// Navigation notices. These report a rejected intent, not a failure:
// the returned state is always the input state unchanged.
var (
	ErrNoMorePages      = errors.New("no more pages available")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNoComments       = errors.New("no comments available")
)

// Navigator interprets user intents against a NavigationState, calling
// the gateways and producing the next state. One intent is in flight at
// a time per session; the gateways themselves are stateless and safely
// reentrant across sessions.
type Navigator struct {
	svc          explorer.ExplorerService
	summarizer   summary.Summarizer
	searchLimit  int
	commentLimit int
}

func NewNavigator(svc explorer.ExplorerService, summarizer summary.Summarizer, searchLimit, commentLimit int) *Navigator {
	if searchLimit <= 0 {
		searchLimit = 15
	}
	if commentLimit <= 0 {
		commentLimit = 100
	}
	return &Navigator{
		svc:          svc,
		summarizer:   summarizer,
		searchLimit:  searchLimit,
		commentLimit: commentLimit,
	}
}

// Apply executes one intent. On any fetch failure the input state is
// returned untouched alongside the error, so the session falls back to
// its last stable view.
func (n *Navigator) Apply(ctx context.Context, state State, intent Intent) (State, error) {
	switch it := intent.(type) {
	case SearchIntent:
		return n.search(ctx, state, it.Query)
	case NextPageIntent:
		return n.nextPage(ctx, state)
	case SelectIntent:
		return n.selectPost(ctx, state, it.Index)
	case ViewCommentsIntent:
		return n.viewComments(state)
	case SummarizeIntent:
		return n.summarize(ctx, state)
	case NextCommentIntent:
		return n.cycleComment(state, 1)
	case PrevCommentIntent:
		return n.cycleComment(state, -1)
	case BackIntent:
		return n.back(state), nil
	default:
		return state, nil
	}
}

// search starts a fresh result set from any mode: the cursor is reset
// and the previous results are replaced wholesale.
func (n *Navigator) search(ctx context.Context, state State, query string) (State, error) {
	posts, after, err := n.svc.Search(ctx, query, n.searchLimit, "")
	if err != nil {
		return state, err
	}

	next := NewState()
	next.Mode = ModeSearchResults
	next.Query = query
	next.Results = posts
	next.Page = 0
	next.After = after
	return next, nil
}

func (n *Navigator) nextPage(ctx context.Context, state State) (State, error) {
	if state.Mode != ModeSearchResults {
		return state, nil
	}
	if state.After == "" {
		return state, ErrNoMorePages
	}

	posts, after, err := n.svc.Search(ctx, state.Query, n.searchLimit, state.After)
	if err != nil {
		return state, err
	}
	if len(posts) == 0 {
		return state, ErrNoMorePages
	}

	next := state
	next.Results = posts
	next.Page++
	next.After = after
	next.Selected = -1
	return next, nil
}

// selectPost enriches the chosen stub with detail fields and loads its
// top-level comments.
func (n *Navigator) selectPost(ctx context.Context, state State, index int) (State, error) {
	if state.Mode != ModeSearchResults {
		return state, nil
	}
	if index < 0 || index >= len(state.Results) {
		return state, ErrInvalidSelection
	}

	post := state.Results[index]

	detail, found, err := n.svc.PostDetails(ctx, post.ID)
	if err != nil {
		return state, err
	}
	if found {
		post.Merge(detail)
	}

	comments, err := n.svc.Comments(ctx, post.ID, n.commentLimit)
	if err != nil {
		return state, err
	}

	next := state
	next.Mode = ModePostDetail
	next.Selected = index
	next.Results[index] = post
	next.Post = post
	next.Comments = comments
	next.CommentIndex = 0
	next.Summary = ""
	return next, nil
}

func (n *Navigator) viewComments(state State) (State, error) {
	if state.Mode != ModePostDetail {
		return state, nil
	}
	if len(state.Comments) == 0 {
		return state, ErrNoComments
	}

	next := state
	next.Mode = ModeCommentBrowser
	return next, nil
}

// summarize displays a summary without changing view: the post and its
// comments stay as they are.
func (n *Navigator) summarize(ctx context.Context, state State) (State, error) {
	if state.Mode != ModePostDetail {
		return state, nil
	}

	commentBodies := make([]string, 0, len(state.Comments))
	for _, c := range state.Comments {
		commentBodies = append(commentBodies, c.Body)
	}

	text, err := n.summarizer.GenerateSummary(ctx, state.Post.Body, commentBodies)
	if err != nil {
		return state, err
	}

	next := state
	next.Summary = text
	return next, nil
}

func (n *Navigator) cycleComment(state State, step int) (State, error) {
	if state.Mode != ModeCommentBrowser || len(state.Comments) == 0 {
		return state, nil
	}

	count := len(state.Comments)
	next := state
	next.CommentIndex = ((state.CommentIndex+step)%count + count) % count
	return next, nil
}

func (n *Navigator) back(state State) State {
	next := state
	switch state.Mode {
	case ModeCommentBrowser:
		next.Mode = ModePostDetail
	case ModePostDetail:
		// Discard the current post and return to the results.
		next.Mode = ModeSearchResults
		next.Selected = -1
		next.Post = models.Post{}
		next.Comments = nil
		next.CommentIndex = 0
		next.Summary = ""
	}
	return next
}
