package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/controllers"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
)

func runAuthRouter(g *echo.Group, userService services.UserServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewAuthController(userService, logger.Named("auth-ctrl"))

	g.POST("/users/signup", ctrl.Signup)
	g.POST("/users/login", ctrl.Login)
}
