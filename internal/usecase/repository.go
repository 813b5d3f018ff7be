package usecase

import (
	"context"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/google/uuid"
)

// Репозитории записи. Все операции выполняются в рамках транзакции,
// лежащей в контексте (pkg/tr); изменения видны после её коммита.

type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BrandRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, brand *domain.Brand) error
	Update(ctx context.Context, brand *domain.Brand) error
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Сервисы чтения. Работают вне транзакции, без побочных эффектов,
// и сразу отдают DTO с присоединёнными сущностями.

type ProductQueries interface {
	GetWithRelations(ctx context.Context, id uuid.UUID) (*ProductInfo, error)
	ListWithRelations(ctx context.Context) ([]ProductInfo, error)
	Search(ctx context.Context, req *SearchProductsReq) ([]ProductInfo, int64, error)
}

type CategoryQueries interface {
	ListFiltered(ctx context.Context, isActive *bool, parentID *uuid.UUID) ([]CategoryInfo, error)
}

type BrandQueries interface {
	List(ctx context.Context, isActive *bool) ([]BrandInfo, error)
}
