package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/controllers"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
)

func runDashboardRouter(g *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewDashboardController(dashboardService, logger.Named("dashboard-ctrl"))

	g.GET("/dashboard", ctrl.GetStats)
}
