package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/google/uuid"
)

const (
	defaultSearchPage     = 1
	defaultSearchPageSize = 100
)

// ProductUseCase реализует бизнес-логику управления товарами каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	brandRepo    BrandRepository
	categoryRepo CategoryRepository
	queries      ProductQueries
	txm          TxManager
	cacheRepo    CacheRepository
	publisher    EventPublisher
	itemTTL      time.Duration
	listTTL      time.Duration
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	brandRepo BrandRepository,
	categoryRepo CategoryRepository,
	queries ProductQueries,
	txm TxManager,
	cacheRepo CacheRepository,
	publisher EventPublisher,
	itemTTL time.Duration,
	listTTL time.Duration,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		queries:      queries,
		txm:          txm,
		cacheRepo:    cacheRepo,
		publisher:    publisher,
		itemTTL:      itemTTL,
		listTTL:      listTTL,
		logger:       logger,
	}
}

// Create создаёт товар в транзакции: проверяет бренд, категорию и
// уникальность слага, после коммита инвалидирует кэш и публикует событие.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.Create"

	if err := validateReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := validatePricing(req.Price, req.OriginalPrice); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		product *domain.Product
		brand   *domain.Brand
	)

	err := p.txm.Do(ctx, func(ctx context.Context) error {
		var err error

		brand, err = p.brandRepo.GetByID(ctx, req.BrandID)
		if err != nil {
			return err
		}

		if req.CategoryID != nil {
			if _, err = p.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
				return err
			}
		}

		exists, err := p.productRepo.ExistsBySlug(ctx, req.Slug, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrProductSlugExists
		}

		product = newProductFromCreateReq(req)

		return p.productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сброс кэша старых списков товаров
	if err := p.cacheRepo.DeleteByPrefix(ctx, productKeyPrefix); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	p.publish(ctx, TopicProductCreated, "ProductCreatedEvent", ProductCreatedEvent{
		ProductID:     product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Price:         product.Price,
		BrandID:       product.BrandID,
		BrandName:     brand.Name,
		CategoryID:    product.CategoryID,
		StockQuantity: product.StockQuantity,
		CreatedAt:     product.CreatedAt,
	})

	info, err := p.queries.GetWithRelations(ctx, product.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return info, nil
}

// Update полностью обновляет товар. События об изменении цены и остатка
// публикуются только если соответствующее поле реально изменилось.
func (p *ProductUseCase) Update(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.Update"

	if err := validateReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := validatePricing(req.Price, req.OriginalPrice); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		product  *domain.Product
		oldPrice = req.Price
		oldStock int
	)

	err := p.txm.Do(ctx, func(ctx context.Context) error {
		var err error

		product, err = p.productRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		oldPrice = product.Price
		oldStock = product.StockQuantity

		if _, err = p.brandRepo.GetByID(ctx, req.BrandID); err != nil {
			return err
		}

		if req.CategoryID != nil {
			if _, err = p.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
				return err
			}
		}

		exists, err := p.productRepo.ExistsBySlug(ctx, req.Slug, req.ID)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrProductSlugExists
		}

		applyProductUpdate(product, req)

		return p.productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, product.ID)

	p.publish(ctx, TopicProductUpdated, "ProductUpdatedEvent", ProductUpdatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Slug:      product.Slug,
		UpdatedAt: product.UpdatedAt,
	})

	if !oldPrice.Equal(product.Price) {
		p.publish(ctx, TopicProductPriceChanged, "ProductPriceChangedEvent", ProductPriceChangedEvent{
			ProductID: product.ID,
			Name:      product.Name,
			OldPrice:  oldPrice,
			NewPrice:  product.Price,
			ChangedAt: time.Now().UTC(),
		})
	}

	if oldStock != product.StockQuantity {
		p.publish(ctx, TopicProductStockUpdated, "ProductStockUpdatedEvent", ProductStockUpdatedEvent{
			ProductID: product.ID,
			Name:      product.Name,
			OldStock:  oldStock,
			NewStock:  product.StockQuantity,
			InStock:   product.InStock,
			UpdatedAt: product.UpdatedAt,
		})
	}

	info, err := p.queries.GetWithRelations(ctx, product.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return info, nil
}

// Delete удаляет товар и инвалидирует связанный кэш.
func (p *ProductUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "ProductUseCase.Delete"

	var product *domain.Product

	err := p.txm.Do(ctx, func(ctx context.Context) error {
		var err error

		product, err = p.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		return p.productRepo.Delete(ctx, id)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidate(ctx, id)

	p.publish(ctx, TopicProductDeleted, "ProductDeletedEvent", ProductDeletedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		DeletedAt: time.Now().UTC(),
	})

	return nil
}

// GetByID возвращает товар по идентификатору, используя кэш сквозного чтения.
func (p *ProductUseCase) GetByID(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	const op = "ProductUseCase.GetByID"

	key := productKey(id)

	var cached ProductInfo
	hit, err := p.cacheRepo.Get(ctx, key, &cached)
	if err != nil {
		p.logger.Warnf("Failed to read product from cache: %v", e.Wrap(op, err))
	}
	if hit {
		return &cached, nil
	}

	info, err := p.queries.GetWithRelations(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.Set(ctx, key, info, p.itemTTL); err != nil {
		p.logger.Warnf("Failed to cache product: %v", e.Wrap(op, err))
	}

	return info, nil
}

// List возвращает все товары со связанными сущностями.
func (p *ProductUseCase) List(ctx context.Context) ([]ProductInfo, error) {
	const op = "ProductUseCase.List"

	key := productsAllKey()

	var cached []ProductInfo
	hit, err := p.cacheRepo.Get(ctx, key, &cached)
	if err != nil {
		p.logger.Warnf("Failed to read products from cache: %v", e.Wrap(op, err))
	}
	if hit {
		return cached, nil
	}

	items, err := p.queries.ListWithRelations(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.Set(ctx, key, items, p.listTTL); err != nil {
		p.logger.Warnf("Failed to cache products: %v", e.Wrap(op, err))
	}

	return items, nil
}

// Search ищет товары по термину с опциональными фильтрами.
// Пустой термин отклоняется до обращения к хранилищу.
func (p *ProductUseCase) Search(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error) {
	const op = "ProductUseCase.Search"

	req.Term = strings.TrimSpace(req.Term)
	if req.Term == "" {
		return nil, e.Wrap(op, e.ErrEmptySearchTerm)
	}

	if req.Page < 1 {
		req.Page = defaultSearchPage
	}
	if req.PageSize < 1 {
		req.PageSize = defaultSearchPageSize
	}

	key := productsSearchKey(req)

	var cached SearchProductsRes
	hit, err := p.cacheRepo.Get(ctx, key, &cached)
	if err != nil {
		p.logger.Warnf("Failed to read search results from cache: %v", e.Wrap(op, err))
	}
	if hit {
		return &cached, nil
	}

	items, total, err := p.queries.Search(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &SearchProductsRes{
		Items:      items,
		TotalCount: total,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	if err := p.cacheRepo.Set(ctx, key, res, p.listTTL); err != nil {
		p.logger.Warnf("Failed to cache search results: %v", e.Wrap(op, err))
	}

	return res, nil
}

// invalidate удаляет товар и все производные списки из кэша.
func (p *ProductUseCase) invalidate(ctx context.Context, id uuid.UUID) {
	const op = "ProductUseCase.invalidate"

	if err := p.cacheRepo.Delete(ctx, productKey(id)); err != nil {
		p.logger.Warnf("Failed to delete product from cache: %v", e.Wrap(op, err))
	}

	if err := p.cacheRepo.DeleteByPrefix(ctx, productKeyPrefix); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}
}

// publish отправляет событие best-effort: сбой публикации не влияет
// на результат операции.
func (p *ProductUseCase) publish(ctx context.Context, topic, eventType string, event any) {
	if err := p.publisher.Publish(ctx, topic, eventType, event); err != nil {
		p.logger.Warnf("Failed to publish %s to %s: %v", eventType, topic, err)
	}
}

func newProductFromCreateReq(req *CreateProductReq) *domain.Product {
	product := domain.NewProduct(req.Name, req.Slug, req.BrandID, req.CategoryID, req.Price)
	product.Description = req.Description
	product.OriginalPrice = req.OriginalPrice
	product.Rating = req.Rating
	product.ReviewCount = req.ReviewCount
	product.Images = req.Images
	product.Tags = req.Tags
	product.Featured = req.Featured
	product.IsCampaign = req.IsCampaign
	product.DiscountPercentage = req.DiscountPercentage
	product.CampaignEndDate = req.CampaignEndDate
	if req.ProductSource != "" {
		product.ProductSource = req.ProductSource
	}
	product.SetStock(req.StockQuantity)

	return product
}

func applyProductUpdate(product *domain.Product, req *UpdateProductReq) {
	product.Name = req.Name
	product.Slug = req.Slug
	product.Description = req.Description
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.BrandID = req.BrandID
	product.CategoryID = req.CategoryID
	product.Rating = req.Rating
	product.ReviewCount = req.ReviewCount
	product.Images = req.Images
	product.Tags = req.Tags
	product.Featured = req.Featured
	product.IsCampaign = req.IsCampaign
	product.DiscountPercentage = req.DiscountPercentage
	product.CampaignEndDate = req.CampaignEndDate
	if req.ProductSource != "" {
		product.ProductSource = req.ProductSource
	}
	product.SetStock(req.StockQuantity)
	product.UpdatedAt = time.Now().UTC()
}
