package usecase

import (
	"context"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/google/uuid"
)

// CategoryUseCase реализует бизнес-логику дерева категорий.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	queries      CategoryQueries
	txm          TxManager
	cacheRepo    CacheRepository
	publisher    EventPublisher
	listTTL      time.Duration
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	queries CategoryQueries,
	txm TxManager,
	cacheRepo CacheRepository,
	publisher EventPublisher,
	listTTL time.Duration,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		queries:      queries,
		txm:          txm,
		cacheRepo:    cacheRepo,
		publisher:    publisher,
		listTTL:      listTTL,
		logger:       logger,
	}
}

// Create создаёт категорию. Родитель, если указан, обязан существовать.
func (c *CategoryUseCase) Create(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.Create"

	if err := validateReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var category *domain.Category

	err := c.txm.Do(ctx, func(ctx context.Context) error {
		if req.ParentID != nil {
			if _, err := c.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
				return err
			}
		}

		exists, err := c.categoryRepo.ExistsBySlug(ctx, req.Slug, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrCategorySlugExists
		}

		category = domain.NewCategory(req.Name, req.Slug, req.ParentID)
		category.Description = req.Description
		category.ImageURL = req.ImageURL
		category.DisplayOrder = req.DisplayOrder

		return c.categoryRepo.Create(ctx, category)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidate(ctx)

	c.publish(ctx, TopicCategoryCreated, "CategoryCreatedEvent", CategoryCreatedEvent{
		CategoryID: category.ID,
		Name:       category.Name,
		Slug:       category.Slug,
		ParentID:   category.ParentID,
		CreatedAt:  category.CreatedAt,
	})

	return c.reload(ctx, category.ID)
}

// Update обновляет категорию целиком.
func (c *CategoryUseCase) Update(ctx context.Context, req *UpdateCategoryReq) (*CategoryInfo, error) {
	const op = "CategoryUseCase.Update"

	if err := validateReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var category *domain.Category

	err := c.txm.Do(ctx, func(ctx context.Context) error {
		var err error

		category, err = c.categoryRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.ParentID != nil {
			if _, err = c.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
				return err
			}
		}

		exists, err := c.categoryRepo.ExistsBySlug(ctx, req.Slug, req.ID)
		if err != nil {
			return err
		}
		if exists {
			return e.ErrCategorySlugExists
		}

		category.Name = req.Name
		category.Slug = req.Slug
		category.ParentID = req.ParentID
		category.IsActive = req.IsActive
		category.Description = req.Description
		category.ImageURL = req.ImageURL
		category.DisplayOrder = req.DisplayOrder
		category.UpdatedAt = time.Now().UTC()

		return c.categoryRepo.Update(ctx, category)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidate(ctx)

	c.publish(ctx, TopicCategoryUpdated, "CategoryUpdatedEvent", CategoryUpdatedEvent{
		CategoryID: category.ID,
		Name:       category.Name,
		Slug:       category.Slug,
		IsActive:   category.IsActive,
		UpdatedAt:  category.UpdatedAt,
	})

	return c.reload(ctx, category.ID)
}

// Delete удаляет категорию. Категория с товарами не удаляется.
func (c *CategoryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "CategoryUseCase.Delete"

	err := c.txm.Do(ctx, func(ctx context.Context) error {
		if _, err := c.categoryRepo.GetByID(ctx, id); err != nil {
			return err
		}

		hasProducts, err := c.productRepo.ExistsByCategory(ctx, id)
		if err != nil {
			return err
		}
		if hasProducts {
			return e.ErrCategoryHasProducts
		}

		return c.categoryRepo.Delete(ctx, id)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	c.invalidate(ctx)

	return nil
}

// List возвращает категории с фильтрами по активности и родителю.
func (c *CategoryUseCase) List(ctx context.Context, req *GetCategoriesReq) ([]CategoryInfo, error) {
	const op = "CategoryUseCase.List"

	key := categoriesKey(req.IsActive, req.ParentID)

	var cached []CategoryInfo
	hit, err := c.cacheRepo.Get(ctx, key, &cached)
	if err != nil {
		c.logger.Warnf("Failed to read categories from cache: %v", e.Wrap(op, err))
	}
	if hit {
		return cached, nil
	}

	items, err := c.queries.ListFiltered(ctx, req.IsActive, req.ParentID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.Set(ctx, key, items, c.listTTL); err != nil {
		c.logger.Warnf("Failed to cache categories: %v", e.Wrap(op, err))
	}

	return items, nil
}

// reload отдаёт свежесобранный DTO категории после записи.
func (c *CategoryUseCase) reload(ctx context.Context, id uuid.UUID) (*CategoryInfo, error) {
	const op = "CategoryUseCase.reload"

	items, err := c.queries.ListFiltered(ctx, nil, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, e.Wrap(op, e.ErrCategoryNotFound)
}

func (c *CategoryUseCase) invalidate(ctx context.Context) {
	const op = "CategoryUseCase.invalidate"

	if err := c.cacheRepo.DeleteByPrefix(ctx, categoryKeyPrefix); err != nil {
		c.logger.Warnf("Failed to invalidate category cache: %v", e.Wrap(op, err))
	}
}

func (c *CategoryUseCase) publish(ctx context.Context, topic, eventType string, event any) {
	if err := c.publisher.Publish(ctx, topic, eventType, event); err != nil {
		c.logger.Warnf("Failed to publish %s to %s: %v", eventType, topic, err)
	}
}
