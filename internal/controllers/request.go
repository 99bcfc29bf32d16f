package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
	"github.com/maitriparekhcs2848/GearGuard/pkg/api"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	limit, offset := parsePagination(ctx)
	filter := repositories.RequestFilter{
		Status:      ctx.QueryParam("status"),
		EquipmentID: ctx.QueryParam("equipment_id"),
		TeamID:      ctx.QueryParam("team_id"),
	}

	list, total, err := c.requestService.GetRequests(ctx.Request().Context(), filter, limit, offset)
	if err != nil {
		c.logger.Error("failed to list requests", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "requests fetched", list, total)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	res, err := c.requestService.FindRequest(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "request fetched", res)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create request", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "request created", res)
}

func (c *RequestController) TransitionStatus(ctx echo.Context) error {
	var payload dto.TransitionRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.requestService.TransitionStatus(ctx.Request().Context(), ctx.Param("id"), payload.Status)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "request status changed", res)
}

func (c *RequestController) OverrideStatus(ctx echo.Context) error {
	var payload dto.TransitionRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.requestService.OverrideStatus(ctx.Request().Context(), ctx.Param("id"), payload.Status)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "request status overridden", res)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "request updated", res)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	if err := c.requestService.DeleteRequest(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "request deleted", nil)
}
