package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
)

type TrendingHandler struct {
	svc          explorer.ExplorerService
	defaultLimit int
}

func NewTrendingHandler(svc explorer.ExplorerService, defaultLimit int) *TrendingHandler {
	if defaultLimit <= 0 {
		defaultLimit = 15
	}
	return &TrendingHandler{svc: svc, defaultLimit: defaultLimit}
}

// GetTrending godoc
// @Summary Get trending posts
// @Description Retrieves trending posts across Reddit, with cursor pagination
// @Tags trending
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of results (default 15)"
// @Param after query string false "Pagination cursor from a previous response"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /trending [get]
func (h *TrendingHandler) GetTrending(c echo.Context) error {
	limit := h.defaultLimit
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid 'limit' parameter")
		}
		limit = v
	}

	after := c.QueryParam("after")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	posts, nextAfter, err := h.svc.Trending(ctx, limit, after)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		Posts: posts,
		After: nextAfter,
		Query: "all",
		Limit: limit,
	})
}
