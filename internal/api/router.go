package api

import (
	"net/http"
	"time"

	"balatro-spectator/internal/config"
	"balatro-spectator/internal/middleware"
	"balatro-spectator/internal/service"
	"balatro-spectator/internal/ws"
	"balatro-spectator/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Container
}

func RegisterRoutes(r *gin.Engine, services *service.Container, cfg *config.Config) {
	handler := &Handler{services: services}
	wsHandler := ws.NewHandler(services.Advisor)

	r.Use(middleware.RequestID(), middleware.AccessLog(), corsMiddleware(cfg.CORS))

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})

	v1 := r.Group("/spectator/v1")
	v1.Use(middleware.AuthRequired())
	{
		v1.GET("/hands", handler.ListHands)
		v1.POST("/classify", handler.Classify)
		v1.POST("/score", handler.Score)
		v1.POST("/best", handler.Best)
		v1.POST("/recommend", handler.Recommend)
		v1.POST("/recommend/batch", handler.RecommendBatch)
	}

	wsGroup := r.Group("/ws")
	wsGroup.Use(middleware.AuthRequired())
	{
		wsGroup.GET("/spectate", wsHandler.HandleSpectate)
	}
}

func corsMiddleware(conf config.CORSConfig) gin.HandlerFunc {
	if len(conf.AllowOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     conf.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
