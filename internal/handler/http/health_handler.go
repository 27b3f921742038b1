package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/config"
	"reddit-explorer/internal/models"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// GetHealth godoc
// @Summary Health check
// @Description Reports service status and the configured upstreams
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:        "ok",
		RedditBaseURL: h.cfg.RedditBaseURL,
		Model:         h.cfg.OllamaModel,
	})
}
