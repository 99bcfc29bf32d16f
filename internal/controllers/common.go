package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 50

func parsePagination(ctx echo.Context) (limit, offset uint64) {
	limit = defaultPageSize
	if v, err := strconv.ParseUint(ctx.QueryParam("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.ParseUint(ctx.QueryParam("offset"), 10, 64); err == nil {
		offset = v
	}
	return limit, offset
}
