package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Name               string           `json:"name" validate:"required,max=500"`
	Slug               string           `json:"slug" validate:"required,max=550"`
	Description        *string          `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"originalPrice"`
	BrandID            uuid.UUID        `json:"brandId" validate:"required"`
	CategoryID         *uuid.UUID       `json:"categoryId"`
	StockQuantity      int              `json:"stockQuantity" validate:"gte=0"`
	Rating             decimal.Decimal  `json:"rating"`
	ReviewCount        int              `json:"reviewCount" validate:"gte=0"`
	Images             []string         `json:"images"`
	Tags               []string         `json:"tags"`
	Featured           bool             `json:"featured"`
	IsCampaign         bool             `json:"isCampaign"`
	DiscountPercentage int              `json:"discountPercentage" validate:"gte=0,lte=100"`
	CampaignEndDate    *time.Time       `json:"campaignEndDate"`
	ProductSource      string           `json:"productSource"`
}

// UpdateProductReq — полный запрос на обновление товара. ID приходит
// из пути запроса и обязан совпадать с телом, если там задан.
type UpdateProductReq struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name" validate:"required,max=500"`
	Slug               string           `json:"slug" validate:"required,max=550"`
	Description        *string          `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"originalPrice"`
	BrandID            uuid.UUID        `json:"brandId" validate:"required"`
	CategoryID         *uuid.UUID       `json:"categoryId"`
	StockQuantity      int              `json:"stockQuantity" validate:"gte=0"`
	Rating             decimal.Decimal  `json:"rating"`
	ReviewCount        int              `json:"reviewCount" validate:"gte=0"`
	Images             []string         `json:"images"`
	Tags               []string         `json:"tags"`
	Featured           bool             `json:"featured"`
	IsCampaign         bool             `json:"isCampaign"`
	DiscountPercentage int              `json:"discountPercentage" validate:"gte=0,lte=100"`
	CampaignEndDate    *time.Time       `json:"campaignEndDate"`
	ProductSource      string           `json:"productSource"`
}

// SearchProductsReq — параметры поиска. Term обязателен, остальные
// фильтры опциональны и комбинируются по AND.
type SearchProductsReq struct {
	Term       string
	Page       int
	PageSize   int
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// SearchProductsRes — страница результатов поиска.
type SearchProductsRes struct {
	Items      []ProductInfo `json:"items"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
}

// ProductInfo — DTO товара для внешнего использования.
// Производные поля (DiscountedPrice, MainImage, IsCampaignActive)
// вычисляются при сборке и не хранятся в базе.
type ProductInfo struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Slug               string           `json:"slug"`
	BrandID            uuid.UUID        `json:"brandId"`
	BrandName          string           `json:"brandName"`
	BrandLogoURL       *string          `json:"brandLogoUrl"`
	CategoryID         *uuid.UUID       `json:"categoryId"`
	CategoryName       *string          `json:"categoryName"`
	Price              decimal.Decimal  `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"originalPrice"`
	DiscountPercentage int              `json:"discountPercentage"`
	DiscountedPrice    *decimal.Decimal `json:"discountedPrice"`
	Description        *string          `json:"description"`
	InStock            bool             `json:"inStock"`
	StockQuantity      int              `json:"stockQuantity"`
	Rating             decimal.Decimal  `json:"rating"`
	ReviewCount        int              `json:"reviewCount"`
	Images             []string         `json:"images"`
	MainImage          *string          `json:"mainImage"`
	Tags               []string         `json:"tags"`
	Featured           bool             `json:"featured"`
	IsCampaign         bool             `json:"isCampaign"`
	CampaignEndDate    *time.Time       `json:"campaignEndDate"`
	IsCampaignActive   bool             `json:"isCampaignActive"`
	ProductSource      string           `json:"productSource"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// CATEGORY USECASE

type CreateCategoryReq struct {
	Name         string     `json:"name" validate:"required,max=300"`
	Slug         string     `json:"slug" validate:"required,max=350"`
	ParentID     *uuid.UUID `json:"parentId"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	DisplayOrder int        `json:"displayOrder" validate:"gte=0"`
}

type UpdateCategoryReq struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name" validate:"required,max=300"`
	Slug         string     `json:"slug" validate:"required,max=350"`
	ParentID     *uuid.UUID `json:"parentId"`
	IsActive     bool       `json:"isActive"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	DisplayOrder int        `json:"displayOrder" validate:"gte=0"`
}

type GetCategoriesReq struct {
	IsActive *bool
	ParentID *uuid.UUID
}

// CategoryInfo — DTO категории. Level считается по цепочке родителей
// ("1" для корня), ProductCount — по товарам категории.
type CategoryInfo struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Level        string     `json:"level"`
	ParentID     *uuid.UUID `json:"parentId"`
	ParentName   *string    `json:"parentName"`
	IsActive     bool       `json:"isActive"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	DisplayOrder int        `json:"displayOrder"`
	ProductCount int        `json:"productCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BRAND USECASE

type CreateBrandReq struct {
	Name         string  `json:"name" validate:"required,max=300"`
	Slug         string  `json:"slug" validate:"required,max=350"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logoUrl"`
	WebsiteURL   *string `json:"websiteUrl"`
	DisplayOrder int     `json:"displayOrder" validate:"gte=0"`
}

type UpdateBrandReq struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name" validate:"required,max=300"`
	Slug         string    `json:"slug" validate:"required,max=350"`
	Description  *string   `json:"description"`
	LogoURL      *string   `json:"logoUrl"`
	WebsiteURL   *string   `json:"websiteUrl"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder" validate:"gte=0"`
}

type GetBrandsReq struct {
	IsActive *bool
}

// BrandInfo — DTO бренда с количеством товаров.
type BrandInfo struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	LogoURL      *string   `json:"logoUrl"`
	WebsiteURL   *string   `json:"websiteUrl"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
