package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrEmptyName      = errors.New("item name is required")
	ErrNegativePrice  = errors.New("price must not be negative")
	// ErrPriceOutOfRange reports a price the cart_items numeric(19,4) column cannot hold exactly.
	ErrPriceOutOfRange = errors.New("price must have at most 4 decimal places and be below 10^15")
)

// PriceScale is the number of decimal places a stored price keeps.
const PriceScale = 4

var priceLimit = decimal.New(1, 15)

// CartItem is a product line placed in the shopping cart. ID is a surrogate key
// assigned by the store on creation.
type CartItem struct {
	ID        int64
	ProductID string
	Name      string
	Price     decimal.Decimal
}

// NewCartItem validates and constructs an unsaved cart item.
func NewCartItem(productID, name string, price decimal.Decimal) (*CartItem, error) {
	item := &CartItem{
		ProductID: strings.TrimSpace(productID),
		Name:      strings.TrimSpace(name),
		Price:     price,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate enforces invariants on the cart item.
func (i *CartItem) Validate() error {
	if strings.TrimSpace(i.ProductID) == "" {
		return ErrEmptyProductID
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	if i.Price.GreaterThanOrEqual(priceLimit) || !i.Price.Equal(i.Price.Round(PriceScale)) {
		return ErrPriceOutOfRange
	}
	return nil
}

// Equal compares two items by value, treating prices numerically.
func (i *CartItem) Equal(other *CartItem) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.ID == other.ID &&
		i.ProductID == other.ProductID &&
		i.Name == other.Name &&
		i.Price.Equal(other.Price)
}
