package mapper

import (
	orderdomain "github.com/Apurer/go-gin-shop-services/internal/domains/orders/domain"
)

// Order is the wire shape of an order. ID is ignored on input.
type Order struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"productId"`
	Qty       int32  `json:"qty"`
	User      string `json:"user"`
}

// ToDomainOrder converts a request body into a domain order without an id.
func ToDomainOrder(order Order) *orderdomain.Order {
	return &orderdomain.Order{
		ProductID: order.ProductID,
		Qty:       order.Qty,
		User:      order.User,
	}
}

func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:        order.ID,
		ProductID: order.ProductID,
		Qty:       order.Qty,
		User:      order.User,
	}
}

func FromDomainOrders(orders []*orderdomain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
