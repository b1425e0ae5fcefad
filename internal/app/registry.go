package app

import (
	"database/sql"

	"github.com/AvihaiAdler/onereport/internal/auth"
	"github.com/AvihaiAdler/onereport/internal/messaging/kafka"
	"github.com/AvihaiAdler/onereport/internal/middleware"
	"github.com/AvihaiAdler/onereport/internal/report"
	"github.com/AvihaiAdler/onereport/internal/roster"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rosterRepo := roster.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(rosterRepo)
	rosterService := roster.NewServiceWithOutbox(rosterRepo, outboxRepo)
	reportService := report.NewService(reportRepo, rosterRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	rosterHandler := roster.NewHandler(rosterService)
	reportHandler := report.NewHandlerWithRedis(reportService, rdb)

	// --- Routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		roster.RegisterRoutes(api, rosterHandler, logger)
		report.RegisterRoutes(api, reportHandler, rdb, logger)
	}

	return nil
}
