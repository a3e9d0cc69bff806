package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/betaview/betaview-backend/internal/config"
	"github.com/betaview/betaview-backend/internal/database"
	"github.com/betaview/betaview-backend/internal/handler"
	"github.com/betaview/betaview-backend/internal/middleware"
	"github.com/betaview/betaview-backend/internal/repository"
	"github.com/betaview/betaview-backend/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	db := database.GetDB()
	streamService := service.NewStreamService(
		repository.NewStreamRepository(db),
		repository.NewMetricsRepository(db),
	)
	streamHandler := handler.NewStreamHandler(streamService)
	overlayHandler := handler.NewOverlayHandler(streamService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "BetaView backend is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		streams := api.Group("/streams")
		{
			streams.GET("", streamHandler.ListStreams)
			streams.GET("/:id", streamHandler.GetStream)
			streams.GET("/:id/metrics", streamHandler.GetMetrics)
			streams.GET("/:id/frame", overlayHandler.ResolveFrame)
			streams.POST("/:id/overlays", overlayHandler.Preview)

			// Mutating routes require a bearer token when a secret is set
			authed := streams.Group("")
			authed.Use(middleware.RequireAuth(cfg.JWTSecret))
			{
				authed.POST("", streamHandler.Ingest)
				authed.POST("/:id/metrics", streamHandler.Reanalyze)
				authed.DELETE("/:id", streamHandler.DeleteStream)
			}
		}
	}

	return r
}
