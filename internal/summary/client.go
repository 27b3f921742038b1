package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"reddit-explorer/internal/config"
	"reddit-explorer/internal/httpx"
)

// maxPromptComments bounds the prompt: only the first hundred comments
// are included, a fixed-window truncation rather than sampling.
const maxPromptComments = 100

const noCommentsFallback = "No comments available."

// Summarizer produces a summary from a post body and its comment bodies.
type Summarizer interface {
	GenerateSummary(ctx context.Context, postBody string, comments []string) (string, error)
}

// SummaryError reports a failed summary: the inference call errored or
// returned empty text.
type SummaryError struct {
	Err error
}

func (e *SummaryError) Error() string {
	if e.Err == nil {
		return "summary generation returned empty text"
	}
	return fmt.Sprintf("summary generation failed: %v", e.Err)
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}

// OllamaClient generates summaries through an Ollama-compatible
// /api/generate endpoint. Inference calls are slow, so the client runs
// with its own longer timeout but shares the retry policy of the Reddit
// client.
type OllamaClient struct {
	client  *httpx.Client
	baseURL string
	model   string
}

func NewOllamaClient(cfg *config.Config, opts ...httpx.Option) *OllamaClient {
	return &OllamaClient{
		client:  httpx.NewClient(cfg.MaxRetries, cfg.RetryBaseDelay, cfg.SummaryTimeout, opts...),
		baseURL: cfg.OllamaBaseURL,
		model:   cfg.OllamaModel,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (o *OllamaClient) GenerateSummary(ctx context.Context, postBody string, comments []string) (string, error) {
	prompt := buildPrompt(postBody, comments)

	payload, err := json.Marshal(generateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", &SummaryError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", &SummaryError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	_, bodyBytes, err := o.client.Do(req)
	if err != nil {
		return "", &SummaryError{Err: err}
	}

	var resp generateResponse
	if err := json.Unmarshal(bodyBytes, &resp); err != nil {
		return "", &SummaryError{Err: err}
	}

	text := strings.TrimSpace(resp.Response)
	if text == "" {
		return "", &SummaryError{}
	}

	return text, nil
}

// buildPrompt numbers each retained comment from 1. With no comments
// the prompt carries a literal fallback line instead.
func buildPrompt(postBody string, comments []string) string {
	if len(comments) > maxPromptComments {
		comments = comments[:maxPromptComments]
	}

	var sb strings.Builder
	for i, comment := range comments {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Comment %d: %s", i+1, comment)
	}

	commentsText := sb.String()
	if commentsText == "" {
		commentsText = noCommentsFallback
	}

	return fmt.Sprintf(
		"Summarize the following Reddit post and its comments in 2-3 sentences.\n\nPost:\n%s\n\nComments:\n%s\n\nSummary:\n",
		postBody, commentsText,
	)
}
