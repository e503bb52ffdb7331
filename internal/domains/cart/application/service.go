package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

// Service orchestrates cart use cases. Removals run inside a unit of work so a
// concurrent reader never observes a half-applied delete.
type Service struct {
	repo        ports.Repository
	uow         ports.UnitOfWork
	idempotency ports.IdempotencyStore
}

type Option func(*Service)

// WithIdempotencyStore enables Idempotency-Key replay for AddToCart.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

func NewService(repo ports.Repository, uow ports.UnitOfWork, opts ...Option) *Service {
	s := &Service{repo: repo, uow: uow}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) AddToCart(ctx context.Context, input ports.AddCartItemInput) (*domain.CartItem, error) {
	item, err := domain.NewCartItem(input.ProductID, input.Name, input.Price)
	if err != nil {
		return nil, mapError(err)
	}
	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" || s.idempotency == nil {
		return s.repo.Create(ctx, item)
	}

	hash, err := FingerprintAddToCart(input)
	if err != nil {
		return nil, err
	}
	existing, err := s.idempotency.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.replay(ctx, existing, hash)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	stored, err := s.idempotency.Save(ctx, ports.IdempotencyRecord{Key: key, RequestHash: hash, CartItemID: created.ID})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, ports.ErrIdempotencyConflict) && stored != nil && stored.RequestHash == hash {
		// Another request with this key won the race; drop our copy and hand back theirs.
		if delErr := s.repo.DeleteByID(ctx, created.ID); delErr != nil {
			return nil, delErr
		}
		return s.replay(ctx, stored, hash)
	}
	// The key was not recorded, so a retry would create a second item; undo this one.
	if delErr := s.repo.DeleteByID(ctx, created.ID); delErr != nil {
		return nil, errors.Join(err, delErr)
	}
	return nil, err
}

func (s *Service) replay(ctx context.Context, record *ports.IdempotencyRecord, hash string) (*domain.CartItem, error) {
	if record.RequestHash != hash {
		return nil, ports.ErrIdempotencyConflict
	}
	item, err := s.repo.GetByID(ctx, record.CartItemID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, fmt.Errorf("%w: cart item %d was removed", ports.ErrIdempotencyConflict, record.CartItemID)
	}
	return item, err
}

func (s *Service) ListCart(ctx context.Context) ([]*domain.CartItem, error) {
	return s.repo.List(ctx)
}

// RemoveFromCart deletes the item inside a transaction. Unknown ids are not an error.
func (s *Service) RemoveFromCart(ctx context.Context, id int64) error {
	if s.uow == nil {
		return errors.New("cart unit of work not configured")
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, repo ports.Repository) error {
		return repo.DeleteByID(ctx, id)
	})
}

var _ ports.Service = (*Service)(nil)
