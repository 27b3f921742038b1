package navigator

import "reddit-explorer/internal/models"

// Mode identifies the current view of an interactive session.
type Mode int

const (
	ModeSearchResults Mode = iota
	ModePostDetail
	ModeCommentBrowser
)

func (m Mode) String() string {
	switch m {
	case ModePostDetail:
		return "post-detail"
	case ModeCommentBrowser:
		return "comment-browser"
	default:
		return "search-results"
	}
}

// State is the complete navigation state of one session. It is a value:
// transitions take a State and return the next one, and a failed fetch
// leaves the input untouched. The state exclusively owns its result set
// and comments; gateways never retain them.
//
// Invariants: Selected, when not -1, indexes into Results. CommentIndex
// stays within [0, len(Comments)) whenever Comments is nonempty.
type State struct {
	Mode     Mode
	Query    string
	Results  []models.Post
	Page     int
	After    string
	Selected int

	// Post is the enriched copy of Results[Selected] after detail merge.
	Post         models.Post
	Comments     []models.Comment
	CommentIndex int

	// Summary holds the text of the most recent AI summary, cleared when
	// the post is discarded.
	Summary string
}

// NewState returns an empty session positioned before the first search.
func NewState() State {
	return State{Selected: -1}
}

// CurrentComment returns the comment under the cycling cursor.
func (s State) CurrentComment() (models.Comment, bool) {
	if len(s.Comments) == 0 {
		return models.Comment{}, false
	}
	return s.Comments[s.CommentIndex], true
}

// Intent is a discrete user action dispatched to the state machine.
type Intent interface {
	isIntent()
}

type SearchIntent struct {
	Query string
}

type NextPageIntent struct{}

type SelectIntent struct {
	Index int
}

type ViewCommentsIntent struct{}

type SummarizeIntent struct{}

type NextCommentIntent struct{}

type PrevCommentIntent struct{}

// BackIntent steps back one view: comment browser to post, post to
// search results.
type BackIntent struct{}

func (SearchIntent) isIntent()       {}
func (NextPageIntent) isIntent()     {}
func (SelectIntent) isIntent()       {}
func (ViewCommentsIntent) isIntent() {}
func (SummarizeIntent) isIntent()    {}
func (NextCommentIntent) isIntent()  {}
func (PrevCommentIntent) isIntent()  {}
func (BackIntent) isIntent()         {}
