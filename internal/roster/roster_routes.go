package roster

import (
	"github.com/AvihaiAdler/onereport/internal/domain"
	"github.com/AvihaiAdler/onereport/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	personnel := r.Group("/personnel")
	personnel.Use(middleware.AuthMiddleware())
	personnel.Use(middleware.ContextLogger(logger))
	{
		personnel.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.ListPersonnel,
		)

		personnel.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.MinRole(domain.RoleManager),
			handler.RegisterPersonnel,
		)

		personnel.POST("/:id/user",
			middleware.RateLimitByUser(0.5, 2),
			middleware.MinRole(domain.RoleManager),
			handler.Promote,
		)

		personnel.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.MinRole(domain.RoleManager),
			handler.UpdatePersonnel,
		)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.MinRole(domain.RoleManager),
			handler.ListUsers,
		)

		users.PUT("/:email",
			middleware.RateLimitByUser(0.5, 2),
			middleware.MinRole(domain.RoleManager),
			handler.UpdateUser,
		)

		users.DELETE("/:email",
			middleware.RateLimitByUser(0.1, 1),
			middleware.MinRole(domain.RoleManager),
			handler.Demote,
		)
	}
}
