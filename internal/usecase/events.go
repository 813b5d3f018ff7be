package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Топики доменных событий каталога.
const (
	TopicProductCreated      = "catalog.product.created"
	TopicProductUpdated      = "catalog.product.updated"
	TopicProductDeleted      = "catalog.product.deleted"
	TopicProductPriceChanged = "catalog.product.price-changed"
	TopicProductStockUpdated = "catalog.product.stock-updated"
	TopicCategoryCreated     = "catalog.category.created"
	TopicCategoryUpdated     = "catalog.category.updated"
	TopicBrandCreated        = "catalog.brand.created"
	TopicBrandUpdated        = "catalog.brand.updated"
)

type ProductCreatedEvent struct {
	ProductID     uuid.UUID       `json:"productId"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Price         decimal.Decimal `json:"price"`
	BrandID       uuid.UUID       `json:"brandId"`
	BrandName     string          `json:"brandName"`
	CategoryID    *uuid.UUID      `json:"categoryId"`
	StockQuantity int             `json:"stockQuantity"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type ProductUpdatedEvent struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProductDeletedEvent struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	DeletedAt time.Time `json:"deletedAt"`
}

// ProductPriceChangedEvent публикуется только при фактическом
// изменении цены.
type ProductPriceChangedEvent struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	OldPrice  decimal.Decimal `json:"oldPrice"`
	NewPrice  decimal.Decimal `json:"newPrice"`
	ChangedAt time.Time       `json:"changedAt"`
}

// ProductStockUpdatedEvent публикуется только при фактическом
// изменении остатка.
type ProductStockUpdatedEvent struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	OldStock  int       `json:"oldStock"`
	NewStock  int       `json:"newStock"`
	InStock   bool      `json:"inStock"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryCreatedEvent struct {
	CategoryID uuid.UUID  `json:"categoryId"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	ParentID   *uuid.UUID `json:"parentId"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type CategoryUpdatedEvent struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	IsActive   bool      `json:"isActive"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BrandCreatedEvent struct {
	BrandID   uuid.UUID `json:"brandId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type BrandUpdatedEvent struct {
	BrandID   uuid.UUID `json:"brandId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}
