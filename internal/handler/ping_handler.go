package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducktracker/reports-backend-go/internal/service"
	"github.com/ducktracker/reports-backend-go/pkg/response"
)

// PingHandler handles HTTP requests for the ping archive
type PingHandler struct {
	imports *service.ImportService
}

// NewPingHandler creates a new ping handler
func NewPingHandler(imports *service.ImportService) *PingHandler {
	return &PingHandler{imports: imports}
}

// ImportSnapshot handles POST /api/v1/pings/snapshot. The body is a tracker
// database JSON export: user ID -> timestamp key -> latitude/longitude.
func (h *PingHandler) ImportSnapshot(c *gin.Context) {
	users, rows, err := h.imports.ImportSnapshot(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to import snapshot", err)
		return
	}

	response.Success(c, gin.H{
		"users": users,
		"pings": rows,
	})
}
