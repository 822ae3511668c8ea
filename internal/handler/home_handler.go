package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/service"
	"github.com/ducktracker/reports-backend-go/pkg/response"
)

// HomeHandler handles HTTP requests for home-location diagnostics
type HomeHandler struct {
	homes *service.HomeService
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(homes *service.HomeService) *HomeHandler {
	return &HomeHandler{homes: homes}
}

// GetHome handles GET /api/v1/users/:id/home
func (h *HomeHandler) GetHome(c *gin.Context) {
	userID := c.Param("id")

	report, err := h.homes.Report(userID)
	if errors.Is(err, home.ErrNoValidPings) {
		response.Error(c, http.StatusNotFound, "No usable location data for user", err)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to infer home location", err)
		return
	}

	response.Success(c, report)
}
