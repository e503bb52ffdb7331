// Package orderhttp exposes the order service over gin.
package orderhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/go-gin-shop-services/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-shop-services/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-shop-services/internal/shared/errors"
)

// OrderAPI wires HTTP transport with the order service.
//
// Requests may carry an Authorization header. It is accepted as-is and never verified.
type OrderAPI struct {
	service   orderports.Service
	responder *apierrors.ChainedResponder
}

func NewOrderAPI(service orderports.Service) *OrderAPI {
	return &OrderAPI{
		service: service,
		responder: apierrors.NewChainedResponder(
			apierrors.SentinelMapper(orderports.ErrNotFound, apierrors.ErrNotFound),
			apierrors.SentinelMapper(orderports.ErrIDExhausted, apierrors.ErrServiceUnavailable),
		),
	}
}

// RegisterRoutes mounts the order endpoints on r.
func (api *OrderAPI) RegisterRoutes(r gin.IRouter) {
	r.POST("/orders", api.PlaceOrder)
	r.GET("/orders/:id", api.GetOrderByID)
	r.GET("/orders", api.ListOrders)
}

// Post /orders
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	var payload orderhttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	placed, err := api.service.PlaceOrder(c.Request.Context(), orderhttpmapper.ToDomainOrder(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(placed))
}

// Get /orders/:id
func (api *OrderAPI) GetOrderByID(c *gin.Context) {
	id := c.Param("id")
	order, err := api.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}
