package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

// CartItem is the wire shape of a cart entry. Price travels as a JSON number.
type CartItem struct {
	ID        *int64      `json:"id"`
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Price     json.Number `json:"price"`
}

// ToAddInput converts a request body into the service input. A client-supplied id is ignored.
func ToAddInput(item CartItem, idempotencyKey string) (cartports.AddCartItemInput, error) {
	if item.Price == "" {
		return cartports.AddCartItemInput{}, fmt.Errorf("price is required")
	}
	price, err := decimal.NewFromString(item.Price.String())
	if err != nil {
		return cartports.AddCartItemInput{}, fmt.Errorf("price %q is not a number", item.Price.String())
	}
	return cartports.AddCartItemInput{
		ProductID:      item.ProductID,
		Name:           item.Name,
		Price:          price,
		IdempotencyKey: idempotencyKey,
	}, nil
}

func FromDomain(item *cartdomain.CartItem) CartItem {
	if item == nil {
		return CartItem{}
	}
	id := item.ID
	return CartItem{
		ID:        &id,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     json.Number(item.Price.String()),
	}
}

func FromDomainList(items []*cartdomain.CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromDomain(item))
	}
	return out
}
