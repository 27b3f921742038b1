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

type SearchHandler struct {
	svc          explorer.ExplorerService
	defaultLimit int
}

func NewSearchHandler(svc explorer.ExplorerService, defaultLimit int) *SearchHandler {
	if defaultLimit <= 0 {
		defaultLimit = 15
	}
	return &SearchHandler{svc: svc, defaultLimit: defaultLimit}
}

// Search godoc
// @Summary Search Reddit for posts
// @Description Searches Reddit posts sorted by hot, with cursor pagination
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum number of results (default 15)"
// @Param after query string false "Pagination cursor from a previous response"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}

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

	posts, nextAfter, err := h.svc.Search(ctx, query, limit, after)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		Posts: posts,
		After: nextAfter,
		Query: query,
		Limit: limit,
	})
}
