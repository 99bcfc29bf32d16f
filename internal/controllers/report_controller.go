package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/internal/services"
	"github.com/maitriparekhcs2848/GearGuard/pkg/api"
	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) ExportRequests(ctx echo.Context) error {
	filter := repositories.RequestFilter{
		Status:      ctx.QueryParam("status"),
		EquipmentID: ctx.QueryParam("equipment_id"),
		TeamID:      ctx.QueryParam("team_id"),
	}

	file, err := c.reportService.ExportRequests(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to build request report", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	if userID, err := utils.GetUserIDFromCtx(ctx.Request().Context()); err == nil {
		c.logger.Info("request report exported", zap.String("userId", userID))
	}

	filename := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)
	return file.Write(ctx.Response().Writer)
}
