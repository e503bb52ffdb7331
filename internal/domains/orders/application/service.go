package application

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/ports"
)

// Service orchestrates order use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// PlaceOrder stores the order under a server-assigned id. Any id on the input is discarded.
func (s *Service) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	return s.repo.Create(ctx, domain.NewOrder(order.ProductID, order.Qty, order.User))
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
