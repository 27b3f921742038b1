package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"reddit-explorer/internal/navigator"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	welcomeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)

	postStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)

	commentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func formatTimestamp(sec int64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).Format("2006-01-02 15:04:05")
}

// truncate shortens s to max runes; slicing on bytes would split
// multi-byte characters in titles.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func renderWelcome() string {
	return welcomeStyle.Render(
		titleStyle.Render("Reddit Explorer") + "\n\n" +
			"Press number to view post details\n" +
			"Use 'n' to go to next page\n" +
			"Press 'c' to cycle comments\n" +
			"Press 's' to get AI summary\n" +
			"Press 'S' (capital S) for new search\n" +
			"Press 'q' or Ctrl+C to quit",
	)
}

func renderSearchResults(state navigator.State) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Subreddit", "Date", "Title")

	for i, post := range state.Results {
		t.Row(
			fmt.Sprintf("%d", i+1),
			post.Subreddit,
			formatTimestamp(post.CreatedUTC),
			truncate(post.Title, 70),
		)
	}

	header := titleStyle.Render(fmt.Sprintf("Search Results (Page %d)", state.Page+1))
	footer := subtleStyle.Render("'n' next page, number to select a post, 's' new search, 'q' to quit")
	return header + "\n" + t.String() + "\n" + footer
}

func renderPostDetail(state navigator.State) string {
	post := state.Post

	body := fmt.Sprintf(
		"%s\n\nSubreddit: %s\nAuthor: %s\nScore: %d\nComments: %d\nCreated: %s\n\n%s",
		titleStyle.Render(post.Title),
		post.Subreddit,
		post.Author,
		post.Score,
		post.NumComments,
		formatTimestamp(post.CreatedUTC),
		post.Body,
	)

	footer := subtleStyle.Render("'c' view comments, 's' AI summary, 'S' new search, any other key to go back")
	return postStyle.Render(body) + "\n" + footer
}

func renderComment(state navigator.State) string {
	comment, ok := state.CurrentComment()
	if !ok {
		return noticeStyle.Render("No comments available")
	}

	body := fmt.Sprintf(
		"%s\nAuthor: %s\nScore: %d\n\n%s",
		titleStyle.Render(fmt.Sprintf("Comment %d of %d", state.CommentIndex+1, len(state.Comments))),
		comment.Author,
		comment.Score,
		comment.Body,
	)

	footer := subtleStyle.Render("'n' next comment, 'p' previous, any other key to return")
	return commentStyle.Render(body) + "\n" + footer
}

func renderSummary(text string) string {
	return summaryStyle.Render(titleStyle.Render("AI Summary") + "\n\n" + text)
}

func renderNotice(text string) string {
	return noticeStyle.Render(text)
}

func renderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
