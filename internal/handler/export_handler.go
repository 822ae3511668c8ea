package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ducktracker/reports-backend-go/internal/service"
)

// ExportHandler streams the tab-separated dwell report
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Download handles GET /api/v1/export: runs the pipeline over the archive
// and streams the report as a text attachment.
func (h *ExportHandler) Download(c *gin.Context) {
	filename := fmt.Sprintf("ducktracker %s.txt", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/tab-separated-values; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.exports.Run(c.Writer); err != nil {
		// Headers are already on the wire; all that is left is to log and
		// cut the response short.
		log.Printf("[ExportHandler] export failed mid-stream: %v", err)
		c.Abort()
	}
}
