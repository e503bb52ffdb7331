package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	"github.com/Apurer/go-gin-shop-services/internal/shared/identity"
)

var (
	_ ports.Repository = (*Repository)(nil)
	_ ports.UnitOfWork = (*Repository)(nil)
)

// Repository is an in-memory cart persistence adapter for development and tests.
type Repository struct {
	mu    sync.RWMutex
	items map[int64]domain.CartItem
	order []int64
	ids   *identity.Sequence
}

func NewRepository() *Repository {
	return &Repository{
		items: map[int64]domain.CartItem{},
		ids:   identity.NewSequence(0),
	}
}

func (r *Repository) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item == nil {
		return nil, errors.New("cart item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(id)
}

func (r *Repository) List(_ context.Context) ([]*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(), nil
}

func (r *Repository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteLocked(id)
	return nil
}

// WithinTx holds the write lock for the whole of fn and restores the previous
// contents if fn fails. fn must only use the repository it is handed.
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context, repo ports.Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make(map[int64]domain.CartItem, len(r.items))
	for id, item := range r.items {
		items[id] = item
	}
	order := slices.Clone(r.order)

	if err := fn(ctx, &txRepository{r: r}); err != nil {
		r.items = items
		r.order = order
		return err
	}
	return nil
}

func (r *Repository) createLocked(item domain.CartItem) *domain.CartItem {
	item.ID = r.ids.Next()
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return &item
}

func (r *Repository) getLocked(id int64) (*domain.CartItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &item, nil
}

func (r *Repository) listLocked() []*domain.CartItem {
	list := make([]*domain.CartItem, 0, len(r.order))
	for _, id := range r.order {
		item := r.items[id]
		list = append(list, &item)
	}
	return list
}

func (r *Repository) deleteLocked(id int64) {
	if _, ok := r.items[id]; !ok {
		return
	}
	delete(r.items, id)
	if idx := slices.Index(r.order, id); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
}

// txRepository operates on the parent's state while WithinTx holds its lock.
type txRepository struct {
	r *Repository
}

func (t *txRepository) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item == nil {
		return nil, errors.New("cart item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	return t.r.createLocked(clone), nil
}

func (t *txRepository) GetByID(_ context.Context, id int64) (*domain.CartItem, error) {
	return t.r.getLocked(id)
}

func (t *txRepository) List(_ context.Context) ([]*domain.CartItem, error) {
	return t.r.listLocked(), nil
}

func (t *txRepository) DeleteByID(_ context.Context, id int64) error {
	t.r.deleteLocked(id)
	return nil
}
