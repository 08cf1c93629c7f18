package handler

import (
	"net/http"

	"vapestore/internal/config"
	"vapestore/internal/middleware"
	"vapestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP。年齢ゲートの内側。
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AgeGate(cfg))

	g.GET("", h.list)
	g.GET("/:number", h.detail)
}

func (h *OrderHandler) list(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing session"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing session"})
	}

	out, err := h.uc.GetOrderByNumber(c.Request().Context(), sessionID, c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
