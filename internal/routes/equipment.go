package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/controllers"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
)

func runEquipmentRouter(g *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewEquipmentController(equipmentService, logger.Named("equipment-ctrl"))

	g.GET("/equipment", ctrl.GetEquipments)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment)
	g.PUT("/equipment/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment)
}
