package ports

import (
	"context"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// CreateOrderInput carries the fields of a new order and its owner.
type CreateOrderInput struct {
	Username string
	Item     string
	Price    float64
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (string, error)
	ListOrders(ctx context.Context, username string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, id, username string) error
}
