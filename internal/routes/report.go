package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/controllers"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
)

func runReportRouter(g *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewReportController(reportService, logger.Named("report-ctrl"))

	g.GET("/reports/requests", ctrl.ExportRequests)
}
