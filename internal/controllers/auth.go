package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
	"github.com/maitriparekhcs2848/GearGuard/pkg/api"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

type AuthController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewAuthController(userService services.UserServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{userService: userService, logger: logger}
}

func (c *AuthController) Signup(ctx echo.Context) error {
	var payload dto.SignupDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.userService.Signup(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("signup failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "user registered", res)
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.userService.Login(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("login failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "login successful", res)
}
