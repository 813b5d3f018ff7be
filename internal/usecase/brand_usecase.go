package usecase

import (
	"context"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/google/uuid"
)

// BrandUseCase реализует бизнес-логику брендов.
type BrandUseCase struct {
	brandRepo BrandRepository
	queries   BrandQueries
	txm       TxManager
	cacheRepo CacheRepository
	publisher EventPublisher
	listTTL   time.Duration
	logger    logger.Logger
}

func NewBrandUC(
	brandRepo BrandRepository,
	queries BrandQueries,
	txm TxManager,
	cacheRepo CacheRepository,
	publisher EventPublisher,
	listTTL time.Duration,
	logger logger.Logger,
) *BrandUseCase {
	return &BrandUseCase{
		brandRepo: brandRepo,
		queries:   queries,
		txm:       txm,
		cacheRepo: cacheRepo,
		publisher: publisher,
		listTTL:   listTTL,
		logger:    logger,
	}
}

// Create создаёт бренд с проверкой уникальности слага.
func (b *BrandUseCase) Create(ctx context.Context, req *CreateBrandReq) (*BrandInfo, error) {
	const op = "BrandUseCase.Create"

	if err := validateReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var brand *domain.Brand

	err := b.txm.Do(ctx, func(ctx context.Context) error {
		exists, err := b.brandRepo.ExistsBySlug(ctx, req.Slug, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrBrandSlugExists
		}

		brand = domain.NewBrand(req.Name, req.Slug)
		brand.Description = req.Description
		brand.LogoURL = req.LogoURL
		brand.WebsiteURL = req.WebsiteURL
		brand.DisplayOrder = req.DisplayOrder

		return b.brandRepo.Create(ctx, brand)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	b.invalidate(ctx)

	b.publish(ctx, TopicBrandCreated, "BrandCreatedEvent", BrandCreatedEvent{
		BrandID:   brand.ID,
		Name:      brand.Name,
		Slug:      brand.Slug,
		CreatedAt: brand.CreatedAt,
	})

	return b.reload(ctx, brand.ID)
}

// Update обновляет бренд целиком.
func (b *BrandUseCase) Update(ctx context.Context, req *UpdateBrandReq) (*BrandInfo, error) {
	const op = "BrandUseCase.Update"

	if err := validateReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var brand *domain.Brand

	err := b.txm.Do(ctx, func(ctx context.Context) error {
		var err error

		brand, err = b.brandRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		exists, err := b.brandRepo.ExistsBySlug(ctx, req.Slug, req.ID)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrBrandSlugExists
		}

		brand.Name = req.Name
		brand.Slug = req.Slug
		brand.Description = req.Description
		brand.LogoURL = req.LogoURL
		brand.WebsiteURL = req.WebsiteURL
		brand.IsActive = req.IsActive
		brand.DisplayOrder = req.DisplayOrder
		brand.UpdatedAt = time.Now().UTC()

		return b.brandRepo.Update(ctx, brand)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	b.invalidate(ctx)

	b.publish(ctx, TopicBrandUpdated, "BrandUpdatedEvent", BrandUpdatedEvent{
		BrandID:   brand.ID,
		Name:      brand.Name,
		Slug:      brand.Slug,
		IsActive:  brand.IsActive,
		UpdatedAt: brand.UpdatedAt,
	})

	return b.reload(ctx, brand.ID)
}

// List возвращает бренды с фильтром по активности.
func (b *BrandUseCase) List(ctx context.Context, req *GetBrandsReq) ([]BrandInfo, error) {
	const op = "BrandUseCase.List"

	key := brandsKey(req.IsActive)

	var cached []BrandInfo
	hit, err := b.cacheRepo.Get(ctx, key, &cached)
	if err != nil {
		b.logger.Warnf("Failed to read brands from cache: %v", e.Wrap(op, err))
	}
	if hit {
		return cached, nil
	}

	items, err := b.queries.List(ctx, req.IsActive)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := b.cacheRepo.Set(ctx, key, items, b.listTTL); err != nil {
		b.logger.Warnf("Failed to cache brands: %v", e.Wrap(op, err))
	}

	return items, nil
}

// reload отдаёт свежесобранный DTO бренда после записи.
func (b *BrandUseCase) reload(ctx context.Context, id uuid.UUID) (*BrandInfo, error) {
	const op = "BrandUseCase.reload"

	items, err := b.queries.List(ctx, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, e.Wrap(op, e.ErrBrandNotFound)
}

func (b *BrandUseCase) invalidate(ctx context.Context) {
	const op = "BrandUseCase.invalidate"

	if err := b.cacheRepo.DeleteByPrefix(ctx, brandKeyPrefix); err != nil {
		b.logger.Warnf("Failed to invalidate brand cache: %v", e.Wrap(op, err))
	}
}

func (b *BrandUseCase) publish(ctx context.Context, topic, eventType string, event any) {
	if err := b.publisher.Publish(ctx, topic, eventType, event); err != nil {
		b.logger.Warnf("Failed to publish %s to %s: %v", eventType, topic, err)
	}
}
