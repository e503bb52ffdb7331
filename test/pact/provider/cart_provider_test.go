//go:build pact
// +build pact

package provider_test

import (
	"context"
	"testing"

	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	pacttest "github.com/Apurer/go-gin-shop-services/test/pact"

	"github.com/Apurer/go-gin-shop-services/internal/app/cartapi"
	cartmemory "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/memory"
	cartobs "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/observability"
	cartworkflows "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/workflows"
	cartapp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/application"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

func TestCartProviderPact(t *testing.T) {
	pactFile := requirePactFile(t, pacttest.CartProviderName)
	app := newSwappableApp(t)
	var service cartports.Service

	reset := func() {
		repo := cartmemory.NewRepository()
		service = cartobs.New(cartapp.NewService(repo, repo, cartapp.WithIdempotencyStore(cartmemory.NewIdempotencyStore())))
		app.install(cartapi.NewRouter(service, cartworkflows.NewInlineCartWorkflows(service)))
	}
	reset()

	stateHandlers := models.StateHandlers{
		pacttest.StateCartEmpty: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			reset()
			return nil, nil
		},
		pacttest.StateCartHasItem: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			reset()
			if setup {
				_, err := service.AddToCart(context.Background(), cartports.AddCartItemInput{
					ProductID: "P1",
					Name:      "Widget",
					Price:     decimal.RequireFromString("9.99"),
				})
				return nil, err
			}
			return nil, nil
		},
	}

	err := pactprovider.NewVerifier().VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.CartProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			reset()
			return nil
		},
	})
	require.NoError(t, err)
}
