package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

type normalizedAddToCartInput struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

// FingerprintAddToCart builds a deterministic hash of the add-to-cart payload (excluding the idempotency key).
// Prices are compared numerically, so 9.9 and 9.90 hash alike.
func FingerprintAddToCart(input ports.AddCartItemInput) (string, error) {
	payload, err := json.Marshal(normalizedAddToCartInput{
		ProductID: strings.TrimSpace(input.ProductID),
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price.String(),
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
