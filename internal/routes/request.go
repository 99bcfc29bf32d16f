package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/controllers"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
)

func runRequestRouter(g *echo.Group, requestService services.RequestServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewRequestController(requestService, logger.Named("request-ctrl"))

	g.GET("/requests", ctrl.GetRequests)
	g.GET("/requests/:id", ctrl.FindRequest)
	g.POST("/requests", ctrl.CreateRequest)
	g.PATCH("/requests/:id/status", ctrl.TransitionStatus)
	g.PATCH("/requests/:id/status/override", ctrl.OverrideStatus)
	g.PUT("/requests/:id", ctrl.UpdateRequest)
	g.DELETE("/requests/:id", ctrl.DeleteRequest)
}
