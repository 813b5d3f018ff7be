package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTxManager выполняет fn без реальной транзакции.
type fakeTxManager struct {
	err   error
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}

	return fn(ctx)
}

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*domain.Product)}
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	clone := *product

	return &clone, nil
}

func (f *fakeProductRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, product := range f.products {
		if product.Slug == slug && id != excludeID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeProductRepo) ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	for _, product := range f.products {
		if product.CategoryID != nil && *product.CategoryID == categoryID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	clone := *product
	f.products[product.ID] = &clone

	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return e.ErrProductNotFound
	}

	clone := *product
	f.products[product.ID] = &clone

	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}

	delete(f.products, id)

	return nil
}

type fakeBrandRepo struct {
	brands map[uuid.UUID]*domain.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[uuid.UUID]*domain.Brand)}
}

func (f *fakeBrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	brand, ok := f.brands[id]
	if !ok {
		return nil, e.ErrBrandNotFound
	}

	clone := *brand

	return &clone, nil
}

func (f *fakeBrandRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, brand := range f.brands {
		if brand.Slug == slug && id != excludeID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	clone := *brand
	f.brands[brand.ID] = &clone

	return nil
}

func (f *fakeBrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	if _, ok := f.brands[brand.ID]; !ok {
		return e.ErrBrandNotFound
	}

	clone := *brand
	f.brands[brand.ID] = &clone

	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*domain.Category)}
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}

	clone := *category

	return &clone, nil
}

func (f *fakeCategoryRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, category := range f.categories {
		if category.Slug == slug && id != excludeID {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	clone := *category
	f.categories[category.ID] = &clone

	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return e.ErrCategoryNotFound
	}

	clone := *category
	f.categories[category.ID] = &clone

	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return e.ErrCategoryNotFound
	}

	delete(f.categories, id)

	return nil
}

// fakeProductQueries синтезирует DTO по идентификатору и записывает
// параметры поисковых запросов.
type fakeProductQueries struct {
	getCalls   int
	listCalls  int
	lastSearch *SearchProductsReq
	searchRes  []ProductInfo
	searchCnt  int64
	listRes    []ProductInfo
}

func (f *fakeProductQueries) GetWithRelations(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	f.getCalls++

	return &ProductInfo{ID: id}, nil
}

func (f *fakeProductQueries) ListWithRelations(ctx context.Context) ([]ProductInfo, error) {
	f.listCalls++

	return f.listRes, nil
}

func (f *fakeProductQueries) Search(ctx context.Context, req *SearchProductsReq) ([]ProductInfo, int64, error) {
	clone := *req
	f.lastSearch = &clone

	return f.searchRes, f.searchCnt, nil
}

// fakeCategoryQueries синтезирует DTO из состояния репозитория,
// items при задании имеет приоритет.
type fakeCategoryQueries struct {
	repo  *fakeCategoryRepo
	items []CategoryInfo
	calls int
}

func (f *fakeCategoryQueries) ListFiltered(ctx context.Context, isActive *bool, parentID *uuid.UUID) ([]CategoryInfo, error) {
	f.calls++

	if f.items != nil {
		return f.items, nil
	}

	var result []CategoryInfo
	for _, category := range f.repo.categories {
		result = append(result, CategoryInfo{
			ID:       category.ID,
			Name:     category.Name,
			Slug:     category.Slug,
			IsActive: category.IsActive,
		})
	}

	return result, nil
}

// fakeBrandQueries синтезирует DTO из состояния репозитория,
// items при задании имеет приоритет.
type fakeBrandQueries struct {
	repo  *fakeBrandRepo
	items []BrandInfo
	calls int
}

func (f *fakeBrandQueries) List(ctx context.Context, isActive *bool) ([]BrandInfo, error) {
	f.calls++

	if f.items != nil {
		return f.items, nil
	}

	var result []BrandInfo
	for _, brand := range f.repo.brands {
		result = append(result, BrandInfo{
			ID:       brand.ID,
			Name:     brand.Name,
			Slug:     brand.Slug,
			IsActive: brand.IsActive,
		})
	}

	return result, nil
}

// fakeCache хранит значения в памяти и записывает инвалидации.
type fakeCache struct {
	store           map[string][]byte
	deletedKeys     []string
	deletedPrefixes []string
	getErr          error
	setErr          error
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}

	data, ok := f.store[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.store[key] = data

	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.deletedKeys = append(f.deletedKeys, keys...)
	for _, key := range keys {
		delete(f.store, key)
	}

	return nil
}

func (f *fakeCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	f.deletedPrefixes = append(f.deletedPrefixes, prefix)
	for key := range f.store {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(f.store, key)
		}
	}

	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.store[key]

	return ok, nil
}

type publishedEvent struct {
	topic     string
	eventType string
	event     any
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, topic, eventType string, event any) error {
	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, publishedEvent{topic: topic, eventType: eventType, event: event})

	return nil
}

func (f *fakePublisher) byTopic(topic string) []publishedEvent {
	var result []publishedEvent
	for _, ev := range f.events {
		if ev.topic == topic {
			result = append(result, ev)
		}
	}

	return result
}
