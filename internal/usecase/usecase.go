package usecase

import (
	"context"

	"github.com/google/uuid"
)

type ProductUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*ProductInfo, error)
	Update(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	List(ctx context.Context) ([]ProductInfo, error)
	Search(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error)
}

type CategoryUC interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error)
	Update(ctx context.Context, req *UpdateCategoryReq) (*CategoryInfo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, req *GetCategoriesReq) ([]CategoryInfo, error)
}

type BrandUC interface {
	Create(ctx context.Context, req *CreateBrandReq) (*BrandInfo, error)
	Update(ctx context.Context, req *UpdateBrandReq) (*BrandInfo, error)
	List(ctx context.Context, req *GetBrandsReq) ([]BrandInfo, error)
}
