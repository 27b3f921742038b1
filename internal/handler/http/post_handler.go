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

type PostHandler struct {
	svc          explorer.ExplorerService
	commentLimit int
}

func NewPostHandler(svc explorer.ExplorerService, commentLimit int) *PostHandler {
	if commentLimit <= 0 {
		commentLimit = 100
	}
	return &PostHandler{svc: svc, commentLimit: commentLimit}
}

// GetPost godoc
// @Summary Get a Reddit post
// @Description Retrieves the normalized fields of a single post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Reddit post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing post ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	post, found, err := h.svc.PostDetails(ctx, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	return c.JSON(http.StatusOK, post)
}

// GetComments godoc
// @Summary Get comments for a post
// @Description Retrieves the flattened top-level comments of a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Reddit post ID"
// @Param limit query int false "Maximum number of comments (default 100)"
// @Success 200 {object} models.CommentsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *PostHandler) GetComments(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing post ID")
	}

	limit := h.commentLimit
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid 'limit' parameter")
		}
		limit = v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	comments, err := h.svc.Comments(ctx, postID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.CommentsResponse{
		PostID:   postID,
		Comments: comments,
		Count:    len(comments),
	})
}
