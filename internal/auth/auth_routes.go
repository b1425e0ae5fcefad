package auth

import (
	"github.com/AvihaiAdler/onereport/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	sessions := r.Group("/auth")
	sessions.Use(middleware.ContextLogger(logger))
	{
		sessions.POST("/exchange", middleware.RateLimitByIP(1, 5), handler.Exchange)
		sessions.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		sessions.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
