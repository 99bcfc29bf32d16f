package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/controllers"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
)

func runTeamRouter(g *echo.Group, teamService services.TeamServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewTeamController(teamService, logger.Named("team-ctrl"))

	g.GET("/teams", ctrl.GetTeams)
	g.GET("/teams/:id", ctrl.FindTeam)
	g.POST("/teams", ctrl.CreateTeam)
	g.DELETE("/teams/:id", ctrl.DeleteTeam)
}
