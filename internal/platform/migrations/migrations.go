package migrations

import (
	"gorm.io/gorm"

	cartpostgres "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/persistence/postgres"
)

// Run creates or updates the tables owned by the cart service. Orders are
// in-memory only and have no schema.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(cartpostgres.Models()...)
}
