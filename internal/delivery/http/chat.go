package http

import (
	"errors"
	"net/http"

	"bazi-insight/internal/dto"
	"bazi-insight/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupChat(base *echo.Group) {
	base.POST("/chat", h.Chat)
}

func (h *HttpAPIHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("message is required"))
	}

	resp, err := h.service.ChatService.Chat(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingChart) {
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("chart data is required for a precise consultation"))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("consultation is temporarily unavailable, please try again later"))
	}

	return c.JSON(http.StatusOK, resp)
}
