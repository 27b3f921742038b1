package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/config"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/navigator"
	"reddit-explorer/internal/parser"
	"reddit-explorer/internal/summary"
	"reddit-explorer/internal/ui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redditClient, err := client.NewRedditClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create Reddit client: %v", err)
	}

	redditParser := parser.NewRedditParser()
	summarizer := summary.NewOllamaClient(cfg)
	service := explorer.NewExplorerService(redditClient, redditParser, summarizer, cfg.DefaultCommentLimit)
	nav := navigator.NewNavigator(service, summarizer, cfg.DefaultSearchLimit, cfg.DefaultCommentLimit)

	// Ctrl+C aborts the in-flight call, including backoff sleeps.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A query may be passed as arguments; otherwise the session prompts.
	initialQuery := strings.Join(os.Args[1:], " ")

	session := ui.NewSession(nav, os.Stdin, os.Stdout)
	if err := session.Run(ctx, initialQuery); err != nil && err != context.Canceled {
		log.Fatalf("Session error: %v", err)
	}
}
