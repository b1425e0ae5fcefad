package report

import (
	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, redisClient *redis.Client, logger *zap.Logger) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/today",
			middleware.RateLimitByUser(3, 10),
			handler.OpenToday,
		)

		reports.PUT("/today",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(redisClient),
			handler.SubmitPresence,
		)

		reports.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.ListByCompany,
		)

		reports.GET("/dates",
			middleware.RateLimitByUser(3, 10),
			middleware.MinRole(domain.RoleManager),
			handler.ListDates,
		)

		reports.GET("/unified/:date",
			middleware.RateLimitByUser(1, 5),
			middleware.MinRole(domain.RoleManager),
			handler.GetUnified,
		)

		reports.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		reports.DELETE("/empty",
			middleware.RateLimitByUser(0.1, 1),
			middleware.MinRole(domain.RoleAdmin),
			handler.PurgeEmpty,
		)
	}
}
