package router

import (
	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/config"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/handler/http"
)

func NewRouter(e *echo.Echo, svc explorer.ExplorerService, cfg *config.Config) {
	sch := http.NewSearchHandler(svc, cfg.DefaultSearchLimit)
	trd := http.NewTrendingHandler(svc, cfg.DefaultSearchLimit)
	pst := http.NewPostHandler(svc, cfg.DefaultCommentLimit)
	sum := http.NewSummaryHandler(svc)
	hlt := http.NewHealthHandler(cfg)

	e.GET("/search", sch.Search)
	e.GET("/trending", trd.GetTrending)
	e.GET("/posts/:id", pst.GetPost)
	e.GET("/posts/:id/comments", pst.GetComments)
	e.GET("/posts/:id/summary", sum.GetSummary)
	e.GET("/health", hlt.GetHealth)
}
