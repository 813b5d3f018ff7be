package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
// Images и Tags хранятся как JSON-текст, NULL означает отсутствие списка.
type ProductModel struct {
	ID                 uuid.UUID        `db:"id"`
	Name               string           `db:"name"`
	Slug               string           `db:"slug"`
	BrandID            uuid.UUID        `db:"brand_id"`
	CategoryID         *uuid.UUID       `db:"category_id"`
	Price              decimal.Decimal  `db:"price"`
	OriginalPrice      *decimal.Decimal `db:"original_price"`
	Description        *string          `db:"description"`
	InStock            bool             `db:"in_stock"`
	StockQuantity      int              `db:"stock_quantity"`
	Rating             decimal.Decimal  `db:"rating"`
	ReviewCount        int              `db:"review_count"`
	Images             *string          `db:"images"`
	Tags               *string          `db:"tags"`
	Featured           bool             `db:"featured"`
	IsCampaign         bool             `db:"is_campaign"`
	DiscountPercentage int              `db:"discount_percentage"`
	CampaignEndDate    *time.Time       `db:"campaign_end_date"`
	ProductSource      string           `db:"product_source"`
	LastSyncedAt       *time.Time       `db:"last_synced_at"`
	CreatedAt          time.Time        `db:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
}

// ProductRow — строка products с присоединёнными брендом и категорией.
type ProductRow struct {
	ProductModel
	BrandName    string  `db:"brand_name"`
	BrandLogoURL *string `db:"brand_logo_url"`
	CategoryName *string `db:"category_name"`
}

// BrandModel представляет запись таблицы brands в PostgreSQL.
type BrandModel struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Description  *string   `db:"description"`
	LogoURL      *string   `db:"logo_url"`
	WebsiteURL   *string   `db:"website_url"`
	IsActive     bool      `db:"is_active"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	Slug         string     `db:"slug"`
	ParentID     *uuid.UUID `db:"parent_id"`
	IsActive     bool       `db:"is_active"`
	Description  *string    `db:"description"`
	ImageURL     *string    `db:"image_url"`
	DisplayOrder int        `db:"display_order"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
