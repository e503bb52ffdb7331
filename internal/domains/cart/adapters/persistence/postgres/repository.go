package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

var (
	_ ports.Repository = (*Repository)(nil)
	_ ports.UnitOfWork = (*Repository)(nil)
)

// Repository persists cart items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle
// and schema (see migrations.Run).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// cartItemRecord maps the cart item to the cart_items table. The key comes from
// the table's bigserial sequence, so ids stay unique after deletes.
type cartItemRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id"`
	ProductID string          `gorm:"column:product_id;type:varchar(128);not null;index"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(19,4);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (cartItemRecord) TableName() string { return "cart_items" }

// Models lists the record types owned by this adapter, for schema setup.
func Models() []any {
	return []any{&cartItemRecord{}, &idempotencyRecord{}}
}

// Create inserts the item and returns it with the database-assigned id.
func (r *Repository) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("cart item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(item)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, classifyError(err)
	}
	return record.toDomain(), nil
}

// GetByID fetches a cart item by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cartItemRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, classifyError(err)
	}
	return record.toDomain(), nil
}

// List returns all cart items in insertion order.
func (r *Repository) List(ctx context.Context) ([]*domain.CartItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []cartItemRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, classifyError(err)
	}
	items := make([]*domain.CartItem, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, nil
}

// DeleteByID removes a cart item. Missing rows are not an error.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return classifyError(r.db.WithContext(ctx).Delete(&cartItemRecord{}, id).Error)
}

// WithinTx runs fn in a READ COMMITTED transaction.
func (r *Repository) WithinTx(ctx context.Context, fn func(ctx context.Context, repo ports.Repository) error) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &Repository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	return classifyError(err)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres cart repository not configured")
	}
	return nil
}

func toRecord(item *domain.CartItem) cartItemRecord {
	return cartItemRecord{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
	}
}

func (r cartItemRecord) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:        r.ID,
		ProductID: r.ProductID,
		Name:      r.Name,
		Price:     r.Price,
	}
}
