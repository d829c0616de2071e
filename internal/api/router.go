package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/config"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/database"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/handler"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/middleware"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/repository"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/service"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/weather"
)

// SetupRouter wires repositories, services and handlers onto the gin engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS for the dashboard frontend
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

	db := database.GetDB()
	readingRepo := repository.NewReadingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	tempRepo := repository.NewTemperatureRepository(db)

	analysisService := service.NewAnalysisService(cfg, readingRepo, sessionRepo, tempRepo, weather.NewClient())
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	ingestHandler := handler.NewIngestHandler(readingRepo, sessionRepo, tempRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Vacuum analytics API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		analysis := api.Group("/analysis")
		{
			analysis.GET("/effectiveness", analysisHandler.GetEffectiveness)
			analysis.GET("/leaks", analysisHandler.GetLeaks)
			analysis.GET("/clusters", analysisHandler.GetClusters)
			analysis.GET("/freeze/status", analysisHandler.GetFreezeStatus)
			analysis.GET("/freeze/drops", analysisHandler.GetFreezeDrops)
		}

		sensors := api.Group("/sensors")
		{
			sensors.GET("/problems", analysisHandler.GetProblemSensors)
		}

		ingest := api.Group("/ingest")
		ingest.Use(middleware.Auth(cfg.JWTSecret))
		{
			ingest.POST("/readings", ingestHandler.PostReadings)
			ingest.POST("/sessions", ingestHandler.PostSessions)
			ingest.POST("/temperatures", ingestHandler.PostTemperatures)
		}
	}

	return r
}
