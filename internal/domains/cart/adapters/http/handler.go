// Package carthttp exposes the cart service over gin.
package carthttp

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	carthttpmapper "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/http/mapper"
	cartapp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/application"
	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	apierrors "github.com/Apurer/go-gin-shop-services/internal/shared/errors"
)

// IdempotencyKeyHeader lets clients retry POST /cart/add safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// CartAPI wires HTTP transport with the cart service and workflows.
type CartAPI struct {
	service   cartports.Service
	workflows cartports.WorkflowOrchestrator
	responder *apierrors.ChainedResponder
}

// NewCartAPI creates a CartAPI. workflows may be nil, in which case adds go straight to the service.
func NewCartAPI(service cartports.Service, workflows cartports.WorkflowOrchestrator) *CartAPI {
	return &CartAPI{
		service:   service,
		workflows: workflows,
		responder: apierrors.NewChainedResponder(
			apierrors.SentinelMapper(cartapp.ErrInvalidInput, apierrors.ErrValidation),
			apierrors.SentinelMapper(cartports.ErrNotFound, apierrors.ErrNotFound),
			apierrors.SentinelMapper(cartports.ErrIdempotencyConflict, apierrors.ErrConflict),
			apierrors.SentinelMapper(cartports.ErrStorageUnavailable, apierrors.ErrServiceUnavailable),
		),
	}
}

// RegisterRoutes mounts the cart endpoints on r.
func (api *CartAPI) RegisterRoutes(r gin.IRouter) {
	r.POST("/cart/add", api.AddToCart)
	r.GET("/cart", api.ListCart)
	r.DELETE("/cart/remove/:id", api.RemoveFromCart)
}

// Post /cart/add
func (api *CartAPI) AddToCart(c *gin.Context) {
	var payload carthttpmapper.CartItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	input, err := carthttpmapper.ToAddInput(payload, strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader)))
	if err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.addToCart(c.Request.Context(), input)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, carthttpmapper.FromDomain(saved))
}

func (api *CartAPI) addToCart(ctx context.Context, input cartports.AddCartItemInput) (*cartdomain.CartItem, error) {
	if api.workflows != nil {
		return api.workflows.AddToCart(ctx, input)
	}
	return api.service.AddToCart(ctx, input)
}

// Get /cart
func (api *CartAPI) ListCart(c *gin.Context) {
	items, err := api.service.ListCart(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromDomainList(items))
}

// Delete /cart/remove/:id
// Removing an unknown id still answers 200.
func (api *CartAPI) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		api.responder.BadRequest(c, "id must be an integer")
		return
	}
	if err := api.service.RemoveFromCart(c.Request.Context(), id); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
