package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/api/views"
	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

type DashboardHandler struct {
	orderService ports.OrderService
	log          zerolog.Logger
}

func NewDashboardHandler(orderService ports.OrderService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{orderService: orderService, log: log}
}

// Show renders the session user's claims and orders. A failed order lookup
// renders an empty list.
func (h *DashboardHandler) Show(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), claims.Name)
	if err != nil {
		h.log.Error().Err(err).Str("username", claims.Name).Msg("list orders failed")
		orders = []domain.Order{}
	}

	return c.Render(http.StatusOK, views.Dashboard, views.DashboardPage{User: claims, Orders: orders})
}
