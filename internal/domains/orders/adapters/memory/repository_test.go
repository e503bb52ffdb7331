package memory

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"

	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-shop-services/internal/shared/identity"
)

func fakeOrder() *domain.Order {
	return &domain.Order{
		ProductID: gofakeit.UUID(),
		Qty:       gofakeit.Int32(),
		User:      gofakeit.Username(),
	}
}

func TestRepository_CreateDiscardsClientID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Order{ID: "fake", ProductID: "P2", Qty: 3, User: "u1"})
	require.NoError(t, err)
	require.NotEqual(t, "fake", created.ID)
	_, err = uuid.Parse(created.ID)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(&domain.Order{ID: created.ID, ProductID: "P2", Qty: 3, User: "u1"}, got); diff != "" {
		t.Fatalf("stored order mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.GetByID(ctx, "fake")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	input := fakeOrder()

	created, err := repo.Create(ctx, input)
	require.NoError(t, err)
	input.User = "mallory"
	created.Qty = -1

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	list[0].ProductID = "changed"

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotEqual(t, "mallory", got.User)
	require.NotEqual(t, int32(-1), got.Qty)
	require.NotEqual(t, "changed", got.ProductID)
}

func TestRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var want []*domain.Order
	for i := 0; i < 5; i++ {
		created, err := repo.Create(ctx, fakeOrder())
		require.NoError(t, err)
		want = append(want, created)
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(want, got))
}

func TestRepository_ConcurrentCreates(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	const n = 100

	ids := make([]string, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			created, err := repo.Create(ctx, &domain.Order{ProductID: fmt.Sprintf("P%d", i), Qty: int32(i), User: "u1"})
			if err != nil {
				return err
			}
			ids[i] = created.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := map[string]struct{}{}
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	require.Len(t, seen, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	for _, order := range list {
		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.Equal(t, order, got)
	}
}

func TestRepository_ConcurrentReadersAndWriters(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			created, err := repo.Create(ctx, fakeOrder())
			if err != nil {
				return err
			}
			_, err = repo.GetByID(ctx, created.ID)
			return err
		})
		g.Go(func() error {
			_, err := repo.List(ctx)
			return err
		})
	}
	require.NoError(t, g.Wait())
}

func TestRepository_RedrawsOnCollision(t *testing.T) {
	var calls atomic.Int32
	tokens := identity.TokenFunc(func() string {
		// first two draws repeat "dup", then unique ids follow
		n := calls.Add(1)
		if n <= 2 {
			return "dup"
		}
		return fmt.Sprintf("id-%d", n)
	})
	repo := NewRepository(WithTokenSource(tokens))
	ctx := context.Background()

	first, err := repo.Create(ctx, fakeOrder())
	require.NoError(t, err)
	require.Equal(t, "dup", first.ID)

	second, err := repo.Create(ctx, fakeOrder())
	require.NoError(t, err)
	require.Equal(t, "id-3", second.ID)
}

func TestRepository_GivesUpAfterBoundedAttempts(t *testing.T) {
	repo := NewRepository(WithTokenSource(identity.TokenFunc(func() string { return "same" })))
	ctx := context.Background()

	_, err := repo.Create(ctx, fakeOrder())
	require.NoError(t, err)
	_, err = repo.Create(ctx, fakeOrder())
	require.ErrorIs(t, err, ports.ErrIDExhausted)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRepository_CreateThenGetProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repo := NewRepository()
		ctx := context.Background()
		inputs := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) domain.Order {
			return domain.Order{
				ID:        rapid.String().Draw(t, "id"),
				ProductID: rapid.StringMatching(`P[0-9]{1,4}`).Draw(t, "productId"),
				Qty:       rapid.Int32().Draw(t, "qty"),
				User:      rapid.StringMatching(`u[a-z]{1,8}`).Draw(t, "user"),
			}
		}), 1, 30).Draw(t, "orders")

		ids := map[string]struct{}{}
		for _, input := range inputs {
			in := input
			created, err := repo.Create(ctx, &in)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if _, dup := ids[created.ID]; dup {
				t.Fatalf("duplicate id %q", created.ID)
			}
			ids[created.ID] = struct{}{}

			got, err := repo.GetByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if diff := cmp.Diff(input, *got, cmpopts.IgnoreFields(domain.Order{}, "ID")); diff != "" {
				t.Fatalf("stored order differs (-want +got):\n%s", diff)
			}
		}
	})
}
