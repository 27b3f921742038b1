package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/explorer"
)

type SummaryHandler struct {
	svc explorer.ExplorerService
}

func NewSummaryHandler(svc explorer.ExplorerService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// GetSummary godoc
// @Summary Get an AI summary of a post
// @Description Fetches a post and its comments, then generates a summary through the configured inference endpoint
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Reddit post ID"
// @Success 200 {object} models.PostSummary
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id}/summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing post ID")
	}

	// Inference is slow compared to Reddit fetches.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 120*time.Second)
	defer cancel()

	result, err := h.svc.Summarize(ctx, postID)
	if err != nil {
		if errors.Is(err, explorer.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
