package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		itemName  string
		price     decimal.Decimal
		wantErr   error
	}{
		{name: "valid", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("9.99")},
		{name: "free item", productID: "P2", itemName: "Sticker", price: decimal.Zero},
		{name: "blank product", productID: "  ", itemName: "Widget", price: decimal.NewFromInt(1), wantErr: ErrEmptyProductID},
		{name: "blank name", productID: "P1", itemName: "", price: decimal.NewFromInt(1), wantErr: ErrEmptyName},
		{name: "negative price", productID: "P1", itemName: "Widget", price: decimal.NewFromInt(-1), wantErr: ErrNegativePrice},
		{name: "four decimals", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("9.9999")},
		{name: "trailing zeros beyond scale", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("9.990000")},
		{name: "five decimals", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("9.99999"), wantErr: ErrPriceOutOfRange},
		{name: "largest storable", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("999999999999999.9999")},
		{name: "too large", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("1e15"), wantErr: ErrPriceOutOfRange},
		{name: "overflow", productID: "P1", itemName: "Widget", price: decimal.RequireFromString("1e20"), wantErr: ErrPriceOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewCartItem(tt.productID, tt.itemName, tt.price)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, item)
				return
			}
			require.NoError(t, err)
			require.Zero(t, item.ID)
			require.True(t, item.Price.Equal(tt.price))
		})
	}
}

func TestNewCartItem_TrimsFields(t *testing.T) {
	item, err := NewCartItem(" P1 ", " Widget ", decimal.NewFromInt(3))
	require.NoError(t, err)
	require.Equal(t, "P1", item.ProductID)
	require.Equal(t, "Widget", item.Name)
}

func TestCartItem_EqualComparesPriceNumerically(t *testing.T) {
	a := &CartItem{ID: 1, ProductID: "P1", Name: "Widget", Price: decimal.RequireFromString("9.99")}
	b := &CartItem{ID: 1, ProductID: "P1", Name: "Widget", Price: decimal.RequireFromString("9.9900")}
	require.True(t, a.Equal(b))

	b.ID = 2
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
}
