package ports

import (
	"context"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (string, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	// DeleteOwned removes the order only when it belongs to username.
	// It returns domain.ErrOrderNotFound when nothing matched.
	DeleteOwned(ctx context.Context, id, username string) error
}
