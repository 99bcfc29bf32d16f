package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
	"github.com/maitriparekhcs2848/GearGuard/pkg/config"
	"github.com/maitriparekhcs2848/GearGuard/pkg/middleware"
	"github.com/maitriparekhcs2848/GearGuard/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger.Named("auth"))

	// --- repositories ---
	userRepo := repositories.NewUserRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- services ---
	userService := services.NewUserService(userRepo, jwtSvc, logger.Named("user"))
	equipmentService := services.NewEquipmentService(equipmentRepo, logger.Named("equipment"))
	teamService := services.NewTeamService(teamRepo, requestRepo, logger.Named("team"))
	requestService := services.NewRequestService(requestRepo, equipmentRepo, logger.Named("request"))
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.CacheTTL, logger.Named("dashboard"))
	reportService := services.NewReportService(requestRepo, logger.Named("report"))

	// --- routers ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, userService, logger)
	runEquipmentRouter(secureGroup, equipmentService, logger)
	runTeamRouter(secureGroup, teamService, logger)
	runRequestRouter(secureGroup, requestService, logger)
	runDashboardRouter(secureGroup, dashboardService, logger)
	runReportRouter(secureGroup, reportService, logger)

	logger.Info("routes registered")
}
