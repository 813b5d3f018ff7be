package converter

import (
	"encoding/json"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ProductConverter преобразует сущности Product между domain, моделью
// PostgreSQL и внешним DTO.
type ProductConverter struct{}

func NewProductConverter() ProductConverter {
	return ProductConverter{}
}

func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:                 entity.ID,
		Name:               entity.Name,
		Slug:               entity.Slug,
		BrandID:            entity.BrandID,
		CategoryID:         entity.CategoryID,
		Price:              entity.Price,
		OriginalPrice:      entity.OriginalPrice,
		Description:        entity.Description,
		InStock:            entity.InStock,
		StockQuantity:      entity.StockQuantity,
		Rating:             entity.Rating,
		ReviewCount:        entity.ReviewCount,
		Images:             encodeStringList(entity.Images),
		Tags:               encodeStringList(entity.Tags),
		Featured:           entity.Featured,
		IsCampaign:         entity.IsCampaign,
		DiscountPercentage: entity.DiscountPercentage,
		CampaignEndDate:    entity.CampaignEndDate,
		ProductSource:      entity.ProductSource,
		LastSyncedAt:       entity.LastSyncedAt,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		Base: domain.Base{
			ID:        model.ID,
			CreatedAt: model.CreatedAt,
			UpdatedAt: model.UpdatedAt,
		},
		Name:               model.Name,
		Slug:               model.Slug,
		BrandID:            model.BrandID,
		CategoryID:         model.CategoryID,
		Price:              model.Price,
		OriginalPrice:      model.OriginalPrice,
		Description:        model.Description,
		InStock:            model.InStock,
		StockQuantity:      model.StockQuantity,
		Rating:             model.Rating,
		ReviewCount:        model.ReviewCount,
		Images:             decodeStringList(model.Images),
		Tags:               decodeStringList(model.Tags),
		Featured:           model.Featured,
		IsCampaign:         model.IsCampaign,
		DiscountPercentage: model.DiscountPercentage,
		CampaignEndDate:    model.CampaignEndDate,
		ProductSource:      model.ProductSource,
		LastSyncedAt:       model.LastSyncedAt,
	}
}

// ToInfo собирает внешний DTO из строки с присоединёнными сущностями.
// Производные поля считаются относительно now.
func (c ProductConverter) ToInfo(row *ProductRow, now time.Time) usecase.ProductInfo {
	images := decodeStringList(row.Images)

	info := usecase.ProductInfo{
		ID:                 row.ID,
		Name:               row.Name,
		Slug:               row.Slug,
		BrandID:            row.BrandID,
		BrandName:          row.BrandName,
		BrandLogoURL:       row.BrandLogoURL,
		CategoryID:         row.CategoryID,
		CategoryName:       row.CategoryName,
		Price:              row.Price,
		OriginalPrice:      row.OriginalPrice,
		DiscountPercentage: row.DiscountPercentage,
		Description:        row.Description,
		InStock:            row.InStock,
		StockQuantity:      row.StockQuantity,
		Rating:             row.Rating,
		ReviewCount:        row.ReviewCount,
		Images:             images,
		Tags:               decodeStringList(row.Tags),
		Featured:           row.Featured,
		IsCampaign:         row.IsCampaign,
		CampaignEndDate:    row.CampaignEndDate,
		ProductSource:      row.ProductSource,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}

	if row.DiscountPercentage > 0 {
		discounted := row.Price.
			Mul(hundred.Sub(decimal.NewFromInt(int64(row.DiscountPercentage)))).
			Div(hundred)
		info.DiscountedPrice = &discounted
	}

	if len(images) > 0 {
		info.MainImage = &images[0]
	}

	info.IsCampaignActive = row.IsCampaign &&
		row.CampaignEndDate != nil &&
		row.CampaignEndDate.After(now)

	return info
}

// BrandConverter преобразует сущности Brand между domain, моделью
// PostgreSQL и внешним DTO.
type BrandConverter struct{}

func NewBrandConverter() BrandConverter {
	return BrandConverter{}
}

func (BrandConverter) ToModel(entity *domain.Brand) *BrandModel {
	return &BrandModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Slug:         entity.Slug,
		Description:  entity.Description,
		LogoURL:      entity.LogoURL,
		WebsiteURL:   entity.WebsiteURL,
		IsActive:     entity.IsActive,
		DisplayOrder: entity.DisplayOrder,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (BrandConverter) ToEntity(model *BrandModel) *domain.Brand {
	return &domain.Brand{
		Base: domain.Base{
			ID:        model.ID,
			CreatedAt: model.CreatedAt,
			UpdatedAt: model.UpdatedAt,
		},
		Name:         model.Name,
		Slug:         model.Slug,
		Description:  model.Description,
		LogoURL:      model.LogoURL,
		WebsiteURL:   model.WebsiteURL,
		IsActive:     model.IsActive,
		DisplayOrder: model.DisplayOrder,
	}
}

func (BrandConverter) ToInfo(model *BrandModel, productCount int) usecase.BrandInfo {
	return usecase.BrandInfo{
		ID:           model.ID,
		Name:         model.Name,
		Slug:         model.Slug,
		Description:  model.Description,
		LogoURL:      model.LogoURL,
		WebsiteURL:   model.WebsiteURL,
		IsActive:     model.IsActive,
		DisplayOrder: model.DisplayOrder,
		ProductCount: productCount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// CategoryConverter преобразует сущности Category между domain, моделью
// PostgreSQL и внешним DTO.
type CategoryConverter struct{}

func NewCategoryConverter() CategoryConverter {
	return CategoryConverter{}
}

func (CategoryConverter) ToModel(entity *domain.Category) *CategoryModel {
	return &CategoryModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Slug:         entity.Slug,
		ParentID:     entity.ParentID,
		IsActive:     entity.IsActive,
		Description:  entity.Description,
		ImageURL:     entity.ImageURL,
		DisplayOrder: entity.DisplayOrder,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (CategoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		Base: domain.Base{
			ID:        model.ID,
			CreatedAt: model.CreatedAt,
			UpdatedAt: model.UpdatedAt,
		},
		Name:         model.Name,
		Slug:         model.Slug,
		ParentID:     model.ParentID,
		IsActive:     model.IsActive,
		Description:  model.Description,
		ImageURL:     model.ImageURL,
		DisplayOrder: model.DisplayOrder,
	}
}

func (CategoryConverter) ToInfo(model *CategoryModel, level string, parentName *string, productCount int) usecase.CategoryInfo {
	return usecase.CategoryInfo{
		ID:           model.ID,
		Name:         model.Name,
		Slug:         model.Slug,
		Level:        level,
		ParentID:     model.ParentID,
		ParentName:   parentName,
		IsActive:     model.IsActive,
		Description:  model.Description,
		ImageURL:     model.ImageURL,
		DisplayOrder: model.DisplayOrder,
		ProductCount: productCount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// encodeStringList сериализует список в JSON-текст, пустой список — NULL.
func encodeStringList(values []string) *string {
	if len(values) == 0 {
		return nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}

	encoded := string(data)

	return &encoded
}

// decodeStringList разбирает JSON-текст, NULL и мусор дают nil.
func decodeStringList(value *string) []string {
	if value == nil || *value == "" {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(*value), &values); err != nil {
		return nil
	}

	return values
}
