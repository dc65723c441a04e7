package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/sessionauth/internal/core/domain"
	"github.com/99minutos/sessionauth/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// CreateOrder stores a new order owned by input.Username and returns its id.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (string, error) {
	id, err := s.repo.Create(ctx, &domain.Order{
		Username: input.Username,
		Item:     input.Item,
		Price:    input.Price,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create order")
		return "", err
	}

	s.logger.Info().Str("order_id", id).Str("username", input.Username).Msg("order created")
	return id, nil
}

func (s *OrderService) ListOrders(ctx context.Context, username string) ([]domain.Order, error) {
	return s.repo.ListByUsername(ctx, username)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// DeleteOrder removes the order only if username owns it.
func (s *OrderService) DeleteOrder(ctx context.Context, id, username string) error {
	if err := s.repo.DeleteOwned(ctx, id, username); err != nil {
		return err
	}
	s.logger.Info().Str("order_id", id).Str("username", username).Msg("order deleted")
	return nil
}
