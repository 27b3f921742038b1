package navigator

import (
	"context"
	"errors"
	"testing"

	"reddit-explorer/internal/models"
)

type fakeExplorer struct {
	SearchFunc      func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error)
	TrendingFunc    func(ctx context.Context, limit int, after string) ([]models.Post, string, error)
	PostDetailsFunc func(ctx context.Context, postID string) (models.Post, bool, error)
	CommentsFunc    func(ctx context.Context, postID string, limit int) ([]models.Comment, error)
	SummarizeFunc   func(ctx context.Context, postID string) (models.PostSummary, error)
}

func (f *fakeExplorer) Search(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
	return f.SearchFunc(ctx, query, limit, after)
}

func (f *fakeExplorer) Trending(ctx context.Context, limit int, after string) ([]models.Post, string, error) {
	return f.TrendingFunc(ctx, limit, after)
}

func (f *fakeExplorer) PostDetails(ctx context.Context, postID string) (models.Post, bool, error) {
	return f.PostDetailsFunc(ctx, postID)
}

func (f *fakeExplorer) Comments(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
	return f.CommentsFunc(ctx, postID, limit)
}

func (f *fakeExplorer) Summarize(ctx context.Context, postID string) (models.PostSummary, error) {
	return f.SummarizeFunc(ctx, postID)
}

type fakeSummarizer struct {
	GenerateSummaryFunc func(ctx context.Context, postBody string, comments []string) (string, error)
}

func (f *fakeSummarizer) GenerateSummary(ctx context.Context, postBody string, comments []string) (string, error) {
	return f.GenerateSummaryFunc(ctx, postBody, comments)
}

func twoPostExplorer() *fakeExplorer {
	return &fakeExplorer{
		SearchFunc: func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
			switch after {
			case "":
				return []models.Post{{ID: "a1", Title: "First"}, {ID: "b2", Title: "Second"}}, "tok1", nil
			case "tok1":
				return []models.Post{{ID: "c3", Title: "Third"}}, "", nil
			default:
				return nil, "", nil
			}
		},
		PostDetailsFunc: func(ctx context.Context, postID string) (models.Post, bool, error) {
			return models.Post{ID: postID, Body: "detail body", Score: 10}, true, nil
		},
		CommentsFunc: func(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
			return []models.Comment{{Author: "u1", Body: "hi"}}, nil
		},
	}
}

func newTestNavigator(svc *fakeExplorer) *Navigator {
	return NewNavigator(svc, &fakeSummarizer{}, 15, 100)
}

func TestSearchReplacesResultsAndResetsCursor(t *testing.T) {
	nav := newTestNavigator(twoPostExplorer())

	state, err := nav.Apply(context.Background(), NewState(), SearchIntent{Query: "cats"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.Mode != ModeSearchResults {
		t.Errorf("expected search results mode, got %v", state.Mode)
	}
	if state.Page != 0 {
		t.Errorf("expected page 0, got %d", state.Page)
	}
	if state.After != "tok1" {
		t.Errorf("expected cursor tok1, got %q", state.After)
	}
	if len(state.Results) != 2 || state.Results[0].ID != "a1" || state.Results[1].ID != "b2" {
		t.Errorf("unexpected results: %+v", state.Results)
	}
}

func TestPaginationScenario(t *testing.T) {
	svc := twoPostExplorer()
	var requestedAfter []string
	inner := svc.SearchFunc
	svc.SearchFunc = func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
		requestedAfter = append(requestedAfter, after)
		return inner(ctx, query, limit, after)
	}

	nav := newTestNavigator(svc)
	ctx := context.Background()

	state, err := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	state, err = nav.Apply(ctx, state, NextPageIntent{})
	if err != nil {
		t.Fatalf("next page: %v", err)
	}

	if len(requestedAfter) != 2 || requestedAfter[1] != "tok1" {
		t.Errorf("expected second request with after=tok1, got %v", requestedAfter)
	}
	if state.Page != 1 {
		t.Errorf("expected page 1, got %d", state.Page)
	}
	if state.After != "" {
		t.Errorf("expected pagination to end, cursor is %q", state.After)
	}

	// The response carried no cursor, so further paging is a no-op.
	next, err := nav.Apply(ctx, state, NextPageIntent{})
	if !errors.Is(err, ErrNoMorePages) {
		t.Fatalf("expected ErrNoMorePages, got %v", err)
	}
	if next.Page != state.Page || len(next.Results) != len(state.Results) {
		t.Error("no-op next page must leave state unchanged")
	}
	if len(requestedAfter) != 2 {
		t.Errorf("no-op next page must not hit the gateway, got %d requests", len(requestedAfter))
	}
}

func TestFailedNextPageKeepsPreviousState(t *testing.T) {
	svc := twoPostExplorer()
	nav := newTestNavigator(svc)
	ctx := context.Background()

	state, err := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	svc.SearchFunc = func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
		return nil, "", errors.New("network down")
	}

	next, err := nav.Apply(ctx, state, NextPageIntent{})
	if err == nil {
		t.Fatal("expected fetch error")
	}
	if next.Page != 0 || next.After != "tok1" || len(next.Results) != 2 {
		t.Errorf("failed fetch must leave state untouched, got %+v", next)
	}
}

func TestSelectMergesDetailAndLoadsComments(t *testing.T) {
	svc := twoPostExplorer()
	var detailID string
	svc.PostDetailsFunc = func(ctx context.Context, postID string) (models.Post, bool, error) {
		detailID = postID
		return models.Post{ID: postID, Body: "detail body", Score: 10}, true, nil
	}

	nav := newTestNavigator(svc)
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, err := nav.Apply(ctx, state, SelectIntent{Index: 0})
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	if detailID != "a1" {
		t.Errorf("expected detail fetch for a1, got %q", detailID)
	}
	if state.Mode != ModePostDetail {
		t.Errorf("expected post detail mode, got %v", state.Mode)
	}
	if state.Post.Title != "First" {
		t.Errorf("stub title must survive an empty detail field, got %q", state.Post.Title)
	}
	if state.Post.Body != "detail body" || state.Post.Score != 10 {
		t.Errorf("detail fields must overwrite the stub, got %+v", state.Post)
	}
	if len(state.Comments) != 1 || state.CommentIndex != 0 {
		t.Errorf("expected one comment at index 0, got %d comments at %d", len(state.Comments), state.CommentIndex)
	}
}

func TestSelectOutOfRangeIsRejected(t *testing.T) {
	nav := newTestNavigator(twoPostExplorer())
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})

	for _, index := range []int{-1, 2, 99} {
		next, err := nav.Apply(ctx, state, SelectIntent{Index: index})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("index %d: expected ErrInvalidSelection, got %v", index, err)
		}
		if next.Mode != ModeSearchResults {
			t.Errorf("index %d: state must not advance", index)
		}
	}
}

func TestCommentCyclingWrapsAround(t *testing.T) {
	svc := twoPostExplorer()
	svc.CommentsFunc = func(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
		return []models.Comment{{Body: "one"}, {Body: "two"}, {Body: "three"}}, nil
	}

	nav := newTestNavigator(svc)
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, _ = nav.Apply(ctx, state, SelectIntent{Index: 0})
	state, err := nav.Apply(ctx, state, ViewCommentsIntent{})
	if err != nil {
		t.Fatalf("view comments: %v", err)
	}
	if state.Mode != ModeCommentBrowser {
		t.Fatalf("expected comment browser mode, got %v", state.Mode)
	}

	// Cycling len(comments) times returns to the start.
	for i := 0; i < 3; i++ {
		state, _ = nav.Apply(ctx, state, NextCommentIntent{})
		if state.CommentIndex < 0 || state.CommentIndex >= 3 {
			t.Fatalf("comment index out of range: %d", state.CommentIndex)
		}
	}
	if state.CommentIndex != 0 {
		t.Errorf("expected wrap back to 0, got %d", state.CommentIndex)
	}

	// prev from 0 wraps to the last comment.
	state, _ = nav.Apply(ctx, state, PrevCommentIntent{})
	if state.CommentIndex != 2 {
		t.Errorf("expected wrap to 2, got %d", state.CommentIndex)
	}
}

func TestSingleCommentWrapsToItself(t *testing.T) {
	nav := newTestNavigator(twoPostExplorer())
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, _ = nav.Apply(ctx, state, SelectIntent{Index: 0})
	state, _ = nav.Apply(ctx, state, ViewCommentsIntent{})

	state, _ = nav.Apply(ctx, state, NextCommentIntent{})
	if state.CommentIndex != 0 {
		t.Errorf("expected index to stay 0 with a single comment, got %d", state.CommentIndex)
	}
}

func TestViewCommentsWithoutCommentsIsRejected(t *testing.T) {
	svc := twoPostExplorer()
	svc.CommentsFunc = func(ctx context.Context, postID string, limit int) ([]models.Comment, error) {
		return nil, nil
	}

	nav := newTestNavigator(svc)
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, _ = nav.Apply(ctx, state, SelectIntent{Index: 0})

	next, err := nav.Apply(ctx, state, ViewCommentsIntent{})
	if !errors.Is(err, ErrNoComments) {
		t.Fatalf("expected ErrNoComments, got %v", err)
	}
	if next.Mode != ModePostDetail {
		t.Errorf("expected to stay in post detail, got %v", next.Mode)
	}
}

func TestSummarizeKeepsStateAndRecordsText(t *testing.T) {
	svc := twoPostExplorer()
	summarizer := &fakeSummarizer{
		GenerateSummaryFunc: func(ctx context.Context, postBody string, comments []string) (string, error) {
			if postBody != "detail body" {
				t.Errorf("expected enriched body, got %q", postBody)
			}
			if len(comments) != 1 || comments[0] != "hi" {
				t.Errorf("expected comment bodies, got %v", comments)
			}
			return "summary text", nil
		},
	}

	nav := NewNavigator(svc, summarizer, 15, 100)
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, _ = nav.Apply(ctx, state, SelectIntent{Index: 0})

	state, err := nav.Apply(ctx, state, SummarizeIntent{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if state.Mode != ModePostDetail {
		t.Errorf("summarize must not change mode, got %v", state.Mode)
	}
	if state.Summary != "summary text" {
		t.Errorf("expected recorded summary, got %q", state.Summary)
	}
}

func TestFailedSummaryKeepsState(t *testing.T) {
	svc := twoPostExplorer()
	summarizer := &fakeSummarizer{
		GenerateSummaryFunc: func(ctx context.Context, postBody string, comments []string) (string, error) {
			return "", errors.New("inference unavailable")
		},
	}

	nav := NewNavigator(svc, summarizer, 15, 100)
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, _ = nav.Apply(ctx, state, SelectIntent{Index: 0})

	next, err := nav.Apply(ctx, state, SummarizeIntent{})
	if err == nil {
		t.Fatal("expected summary error")
	}
	if next.Summary != "" || next.Mode != ModePostDetail {
		t.Errorf("failed summary must leave state untouched, got %+v", next)
	}
}

func TestBackStepsOneViewAtATime(t *testing.T) {
	nav := newTestNavigator(twoPostExplorer())
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})
	state, _ = nav.Apply(ctx, state, SelectIntent{Index: 0})
	state, _ = nav.Apply(ctx, state, ViewCommentsIntent{})

	state, _ = nav.Apply(ctx, state, BackIntent{})
	if state.Mode != ModePostDetail {
		t.Fatalf("expected return to post detail, got %v", state.Mode)
	}
	if len(state.Comments) == 0 {
		t.Error("returning from comments must keep the comment list")
	}

	state, _ = nav.Apply(ctx, state, BackIntent{})
	if state.Mode != ModeSearchResults {
		t.Fatalf("expected return to search results, got %v", state.Mode)
	}
	if state.Selected != -1 || len(state.Comments) != 0 || state.Summary != "" {
		t.Error("discarding a post must clear selection, comments and summary")
	}
	if len(state.Results) != 2 {
		t.Error("results must survive returning from a post")
	}
}

func TestEmptySearchReplacesResults(t *testing.T) {
	svc := twoPostExplorer()
	nav := newTestNavigator(svc)
	ctx := context.Background()

	state, _ := nav.Apply(ctx, NewState(), SearchIntent{Query: "cats"})

	svc.SearchFunc = func(ctx context.Context, query string, limit int, after string) ([]models.Post, string, error) {
		return nil, "", nil
	}

	next, err := nav.Apply(ctx, state, SearchIntent{Query: "no hits"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next.Results) != 0 {
		t.Errorf("a search always replaces the result set, got %+v", next.Results)
	}
	if next.Query != "no hits" || next.After != "" || next.Page != 0 {
		t.Errorf("expected reset state for the new query, got %+v", next)
	}
}
