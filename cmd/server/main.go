package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reddit-explorer/internal/app"

	_ "reddit-explorer/docs"
)

// @title Reddit Explorer API
// @version 1.0
// @description HTTP gateway for searching Reddit posts, browsing comments and generating AI summaries through a locally-hosted inference endpoint.
//
// @contact.name API Support
//
// @license.name MIT
//
// @BasePath /

func main() {
	application, err := app.Initialize()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	go func() {
		if err := application.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("Server started")
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", application.Config.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Echo.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
