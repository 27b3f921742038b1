package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reddit-explorer/internal/navigator"
)

// Session drives one interactive terminal session: it reads keystrokes,
// translates them into intents, applies them through the navigator and
// prints the resulting state. One intent is in flight at a time.
type Session struct {
	nav   *navigator.Navigator
	state navigator.State
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(nav *navigator.Navigator, in io.Reader, out io.Writer) *Session {
	return &Session{
		nav:   nav,
		state: navigator.NewState(),
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run starts the session, optionally with an initial query. It returns
// when the user quits, input ends, or the context is cancelled.
func (s *Session) Run(ctx context.Context, initialQuery string) error {
	fmt.Fprintln(s.out, renderWelcome())

	query := strings.TrimSpace(initialQuery)
	if query == "" {
		var ok bool
		query, ok = s.prompt("\nEnter search query: ")
		if !ok || query == "" {
			fmt.Fprintln(s.out, renderNotice("No query provided. Exiting."))
			return nil
		}
	}

	if !s.apply(ctx, navigator.SearchIntent{Query: query}) {
		return ctx.Err()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.render()

		input, ok := s.prompt("\nEnter selection: ")
		if !ok {
			return nil
		}

		intent, quit := s.intentFor(input)
		if quit {
			fmt.Fprintln(s.out, renderNotice("Goodbye!"))
			return nil
		}
		if intent == nil {
			continue
		}

		if !s.apply(ctx, intent) {
			return ctx.Err()
		}
	}
}

// intentFor maps a keystroke to an intent for the current mode. A nil
// intent means the input was consumed without a transition (for example
// an aborted new-search prompt).
func (s *Session) intentFor(input string) (navigator.Intent, bool) {
	switch s.state.Mode {
	case navigator.ModeSearchResults:
		switch strings.ToLower(input) {
		case "q", "quit":
			return nil, true
		case "n":
			return navigator.NextPageIntent{}, false
		case "s":
			return s.newSearchIntent()
		default:
			if index, err := strconv.Atoi(input); err == nil {
				return navigator.SelectIntent{Index: index - 1}, false
			}
			fmt.Fprintln(s.out, renderNotice("Unknown command. Use 'n' for next page, 's' for new search, number to select post, or 'q' to quit"))
			return nil, false
		}

	case navigator.ModePostDetail:
		switch input {
		case "c":
			return navigator.ViewCommentsIntent{}, false
		case "s":
			return navigator.SummarizeIntent{}, false
		case "S":
			return s.newSearchIntent()
		default:
			return navigator.BackIntent{}, false
		}

	case navigator.ModeCommentBrowser:
		switch strings.ToLower(input) {
		case "n":
			return navigator.NextCommentIntent{}, false
		case "p":
			return navigator.PrevCommentIntent{}, false
		default:
			return navigator.BackIntent{}, false
		}
	}

	return nil, false
}

func (s *Session) newSearchIntent() (navigator.Intent, bool) {
	query, ok := s.prompt("Enter new search query: ")
	if !ok {
		return nil, true
	}
	if query == "" {
		fmt.Fprintln(s.out, renderNotice("No query provided."))
		return nil, false
	}
	return navigator.SearchIntent{Query: query}, false
}

// apply runs one intent. Fetch failures and navigation notices are
// reported and the session stays on its last stable state. Returns
// false when the context was cancelled.
func (s *Session) apply(ctx context.Context, intent navigator.Intent) bool {
	next, err := s.nav.Apply(ctx, s.state, intent)
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		switch err {
		case navigator.ErrNoMorePages, navigator.ErrNoComments, navigator.ErrInvalidSelection:
			fmt.Fprintln(s.out, renderNotice(err.Error()))
		default:
			fmt.Fprintln(s.out, renderError(err))
		}
	}
	s.state = next
	return true
}

func (s *Session) render() {
	switch s.state.Mode {
	case navigator.ModePostDetail:
		fmt.Fprintln(s.out, renderPostDetail(s.state))
		if s.state.Summary != "" {
			fmt.Fprintln(s.out, renderSummary(s.state.Summary))
		}
	case navigator.ModeCommentBrowser:
		fmt.Fprintln(s.out, renderComment(s.state))
	default:
		if len(s.state.Results) > 0 {
			fmt.Fprintln(s.out, renderSearchResults(s.state))
		} else if s.state.Query != "" {
			fmt.Fprintln(s.out, renderNotice("No results found."))
		}
	}
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
