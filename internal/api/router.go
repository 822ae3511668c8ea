package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ducktracker/reports-backend-go/internal/config"
	"github.com/ducktracker/reports-backend-go/internal/handler"
	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/middleware"
	"github.com/ducktracker/reports-backend-go/internal/repository"
	"github.com/ducktracker/reports-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the gin engine
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, time.Minute)))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	repo := repository.NewPingRepository(db)
	imports := service.NewImportService(repo)
	exports := service.NewExportService(repo, cfg.TSIMinutes, home.NewRandDigits())
	homes := service.NewHomeService(repo)

	pingHandler := handler.NewPingHandler(imports)
	exportHandler := handler.NewExportHandler(exports)
	homeHandler := handler.NewHomeHandler(homes)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Ducktracker Reports API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		pings := api.Group("/pings")
		{
			pings.POST("/snapshot", middleware.Auth(cfg.JWTSecret), pingHandler.ImportSnapshot)
		}

		api.GET("/export", exportHandler.Download)

		users := api.Group("/users")
		{
			users.GET("/:id/home", homeHandler.GetHome)
		}
	}

	return r
}
