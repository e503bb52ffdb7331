package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-shop-services/internal/shared/identity"
)

var _ ports.Repository = (*Repository)(nil)

// maxIDAttempts bounds how many tokens Create draws before giving up.
const maxIDAttempts = 8

// Repository is the process-lifetime order registry. All access goes through mu.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	order  []string
	tokens identity.TokenSource
}

type Option func(*Repository)

// WithTokenSource overrides how order ids are drawn.
func WithTokenSource(tokens identity.TokenSource) Option {
	return func(r *Repository) {
		if tokens != nil {
			r.tokens = tokens
		}
	}
}

func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		orders: map[string]domain.Order{},
		tokens: identity.UUIDTokens{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := r.drawIDLocked()
	if err != nil {
		return nil, err
	}
	clone.ID = id
	r.orders[id] = clone
	r.order = append(r.order, id)
	return &clone, nil
}

func (r *Repository) drawIDLocked() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := r.tokens.NewToken()
		if id == "" {
			continue
		}
		if _, taken := r.orders[id]; !taken {
			return id, nil
		}
	}
	return "", ports.ErrIDExhausted
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &order, nil
}

// List returns copies of every order in insertion order.
func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.order))
	for _, id := range r.order {
		order := r.orders[id]
		list = append(list, &order)
	}
	return list, nil
}
