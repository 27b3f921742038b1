package app

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/config"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/parser"
	"reddit-explorer/internal/router"
	"reddit-explorer/internal/summary"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service explorer.ExplorerService
}

func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	redditClient, err := client.NewRedditClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	redditParser := parser.NewRedditParser()
	summarizer := summary.NewOllamaClient(cfg)
	service := explorer.NewExplorerService(redditClient, redditParser, summarizer, cfg.DefaultCommentLimit)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.HTTPErrorHandler = errorHandler
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router.NewRouter(e, service, cfg)

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: service,
	}, nil
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	return a.Echo.Start(":" + port)
}

// errorHandler renders every error as {"error": message} with the
// appropriate status code.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, models.ErrorResponse{Error: message})
}
