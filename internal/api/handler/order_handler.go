package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
	log          zerolog.Logger
}

func NewOrderHandler(orderService ports.OrderService, log zerolog.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, log: log}
}

// Create stores an order owned by the session user.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		h.log.Debug().Str("username", claims.Name).Str("reason", err.Error()).Msg("order payload rejected")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing item or price"})
	}

	id, err := h.orderService.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Username: claims.Name,
		Item:     req.Item,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createOrderResponse{Status: "created", ID: id})
}

// Delete removes an order only when the session user owns it.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	err = h.orderService.DeleteOrder(c.Request().Context(), c.Param("id"), claims.Name)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

// ListAll returns every order. Mounted behind RBAC("admin").
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ordersResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orderService.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: orders})
}
