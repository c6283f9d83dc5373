package http

import (
	"errors"
	"net/http"

	"bazi-insight/internal/dto"
	"bazi-insight/internal/repository"
	"bazi-insight/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	base.POST("/analysis", h.SubmitBirthChart)
	base.GET("/analysis", h.GetAnalysis)
}

func (h *HttpAPIHandler) SubmitBirthChart(c echo.Context) error {
	var req dto.SubmitBirthChartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}

	resp, err := h.service.AnalysisService.Submit(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBirthDate) {
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		}
		if errors.Is(err, service.ErrChartUnavailable) {
			return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("chart calculation service is unavailable, please try again later"))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HttpAPIHandler) GetAnalysis(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("id is required"))
	}

	resp, err := h.service.AnalysisService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, dto.NewErrorResponse("analysis session not found or expired"))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}

	return c.JSON(http.StatusOK, resp)
}
