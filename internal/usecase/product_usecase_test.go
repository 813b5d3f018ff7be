package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	uc        *ProductUseCase
	products  *fakeProductRepo
	brands    *fakeBrandRepo
	categories *fakeCategoryRepo
	queries   *fakeProductQueries
	cache     *fakeCache
	publisher *fakePublisher
	txm       *fakeTxManager
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products:   newFakeProductRepo(),
		brands:     newFakeBrandRepo(),
		categories: newFakeCategoryRepo(),
		queries:    &fakeProductQueries{},
		cache:      newFakeCache(),
		publisher:  &fakePublisher{},
		txm:        &fakeTxManager{},
	}

	f.uc = NewProductUC(
		f.products,
		f.brands,
		f.categories,
		f.queries,
		f.txm,
		f.cache,
		f.publisher,
		5*time.Minute,
		10*time.Minute,
		nopLogger{},
	)

	return f
}

func (f *productFixture) seedBrand(name string) *domain.Brand {
	brand := domain.NewBrand(name, name+"-slug")
	f.brands.brands[brand.ID] = brand

	return brand
}

func (f *productFixture) seedProduct(brandID uuid.UUID, slug string, price decimal.Decimal, stock int) *domain.Product {
	product := domain.NewProduct("seeded", slug, brandID, nil, price)
	product.SetStock(stock)
	f.products.products[product.ID] = product

	return product
}

func validCreateReq(brandID uuid.UUID) *CreateProductReq {
	return &CreateProductReq{
		Name:          "Gaming Mouse",
		Slug:          "gaming-mouse",
		Price:         decimal.NewFromInt(100),
		BrandID:       brandID,
		StockQuantity: 5,
	}
}

func TestProductCreate(t *testing.T) {
	t.Run("creates product and publishes event", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")

		info, err := f.uc.Create(context.Background(), validCreateReq(brand.ID))
		require.NoError(t, err)
		require.NotNil(t, info)

		require.Len(t, f.products.products, 1)
		for _, product := range f.products.products {
			assert.Equal(t, "gaming-mouse", product.Slug)
			assert.True(t, product.InStock)
			assert.Equal(t, domain.SourceOwn, product.ProductSource)
		}

		events := f.publisher.byTopic(TopicProductCreated)
		require.Len(t, events, 1)
		created := events[0].event.(ProductCreatedEvent)
		assert.Equal(t, "Logitech", created.BrandName)
		assert.Equal(t, "ProductCreatedEvent", events[0].eventType)

		assert.Contains(t, f.cache.deletedPrefixes, "products:")
	})

	t.Run("rejects unknown brand", func(t *testing.T) {
		f := newProductFixture()

		_, err := f.uc.Create(context.Background(), validCreateReq(uuid.New()))
		require.ErrorIs(t, err, e.ErrBrandNotFound)

		assert.Empty(t, f.products.products)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")

		req := validCreateReq(brand.ID)
		missing := uuid.New()
		req.CategoryID = &missing

		_, err := f.uc.Create(context.Background(), req)
		require.ErrorIs(t, err, e.ErrCategoryNotFound)
		assert.Empty(t, f.products.products)
	})

	t.Run("rejects duplicate slug and keeps store unchanged", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		f.seedProduct(brand.ID, "gaming-mouse", decimal.NewFromInt(50), 1)

		_, err := f.uc.Create(context.Background(), validCreateReq(brand.ID))
		require.ErrorIs(t, err, e.ErrProductSlugExists)

		assert.Len(t, f.products.products, 1)
		assert.Empty(t, f.publisher.events)
		assert.Empty(t, f.cache.deletedPrefixes)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")

		req := validCreateReq(brand.ID)
		req.Price = decimal.Zero

		_, err := f.uc.Create(context.Background(), req)
		require.ErrorIs(t, err, e.ErrPriceMustBePositive)
		assert.Zero(t, f.txm.calls)
	})

	t.Run("rejects original price below price", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")

		req := validCreateReq(brand.ID)
		original := decimal.NewFromInt(90)
		req.OriginalPrice = &original

		_, err := f.uc.Create(context.Background(), req)
		require.ErrorIs(t, err, e.ErrOriginalPriceTooLow)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")

		req := validCreateReq(brand.ID)
		req.Name = ""

		_, err := f.uc.Create(context.Background(), req)
		require.ErrorIs(t, err, e.ErrValidation)
	})
}

func TestProductUpdate(t *testing.T) {
	updateReqFor := func(product *domain.Product) *UpdateProductReq {
		return &UpdateProductReq{
			ID:            product.ID,
			Name:          "Updated",
			Slug:          product.Slug,
			Price:         product.Price,
			BrandID:       product.BrandID,
			StockQuantity: product.StockQuantity,
		}
	}

	t.Run("returns not found for unknown product", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")

		req := &UpdateProductReq{
			ID:      uuid.New(),
			Name:    "Updated",
			Slug:    "updated",
			Price:   decimal.NewFromInt(10),
			BrandID: brand.ID,
		}

		_, err := f.uc.Update(context.Background(), req)
		require.ErrorIs(t, err, e.ErrProductNotFound)
	})

	t.Run("publishes price changed only when price differs", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		req := updateReqFor(product)
		req.Price = decimal.NewFromInt(80)

		_, err := f.uc.Update(context.Background(), req)
		require.NoError(t, err)

		priceEvents := f.publisher.byTopic(TopicProductPriceChanged)
		require.Len(t, priceEvents, 1)
		ev := priceEvents[0].event.(ProductPriceChangedEvent)
		assert.True(t, ev.OldPrice.Equal(decimal.NewFromInt(100)))
		assert.True(t, ev.NewPrice.Equal(decimal.NewFromInt(80)))

		assert.Empty(t, f.publisher.byTopic(TopicProductStockUpdated))
		assert.Len(t, f.publisher.byTopic(TopicProductUpdated), 1)
	})

	t.Run("publishes stock updated only when stock differs", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		req := updateReqFor(product)
		req.StockQuantity = 0

		_, err := f.uc.Update(context.Background(), req)
		require.NoError(t, err)

		stockEvents := f.publisher.byTopic(TopicProductStockUpdated)
		require.Len(t, stockEvents, 1)
		ev := stockEvents[0].event.(ProductStockUpdatedEvent)
		assert.Equal(t, 5, ev.OldStock)
		assert.Equal(t, 0, ev.NewStock)
		assert.False(t, ev.InStock)

		assert.Empty(t, f.publisher.byTopic(TopicProductPriceChanged))
	})

	t.Run("no conditional events when nothing differs", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		_, err := f.uc.Update(context.Background(), updateReqFor(product))
		require.NoError(t, err)

		assert.Empty(t, f.publisher.byTopic(TopicProductPriceChanged))
		assert.Empty(t, f.publisher.byTopic(TopicProductStockUpdated))
		assert.Len(t, f.publisher.byTopic(TopicProductUpdated), 1)
	})

	t.Run("invalidates item key and prefix", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		_, err := f.uc.Update(context.Background(), updateReqFor(product))
		require.NoError(t, err)

		assert.Contains(t, f.cache.deletedKeys, "products:"+product.ID.String())
		assert.Contains(t, f.cache.deletedPrefixes, "products:")
	})

	t.Run("rejects slug taken by another product", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		f.seedProduct(brand.ID, "taken", decimal.NewFromInt(10), 1)
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		req := updateReqFor(product)
		req.Slug = "taken"

		_, err := f.uc.Update(context.Background(), req)
		require.ErrorIs(t, err, e.ErrProductSlugExists)
	})

	t.Run("keeping own slug is not a conflict", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		_, err := f.uc.Update(context.Background(), updateReqFor(product))
		require.NoError(t, err)
	})
}

func TestProductDelete(t *testing.T) {
	t.Run("deletes and publishes event", func(t *testing.T) {
		f := newProductFixture()
		brand := f.seedBrand("Logitech")
		product := f.seedProduct(brand.ID, "mouse", decimal.NewFromInt(100), 5)

		err := f.uc.Delete(context.Background(), product.ID)
		require.NoError(t, err)

		assert.Empty(t, f.products.products)

		events := f.publisher.byTopic(TopicProductDeleted)
		require.Len(t, events, 1)
		assert.Equal(t, product.ID, events[0].event.(ProductDeletedEvent).ProductID)

		assert.Contains(t, f.cache.deletedKeys, "products:"+product.ID.String())
		assert.Contains(t, f.cache.deletedPrefixes, "products:")
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		f := newProductFixture()

		err := f.uc.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, e.ErrProductNotFound)
		assert.Empty(t, f.publisher.events)
	})
}

func TestProductGetByID(t *testing.T) {
	t.Run("cache hit skips storage", func(t *testing.T) {
		f := newProductFixture()
		id := uuid.New()

		require.NoError(t, f.cache.Set(context.Background(), "products:"+id.String(), ProductInfo{ID: id, Name: "cached"}, time.Minute))

		info, err := f.uc.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "cached", info.Name)
		assert.Zero(t, f.queries.getCalls)
	})

	t.Run("cache miss reads storage and fills cache", func(t *testing.T) {
		f := newProductFixture()
		id := uuid.New()

		info, err := f.uc.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, info.ID)
		assert.Equal(t, 1, f.queries.getCalls)

		_, cached := f.cache.store["products:"+id.String()]
		assert.True(t, cached)
	})

	t.Run("cache failure degrades to storage read", func(t *testing.T) {
		f := newProductFixture()
		f.cache.getErr = assert.AnError
		id := uuid.New()

		info, err := f.uc.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, info.ID)
		assert.Equal(t, 1, f.queries.getCalls)
	})
}

func TestProductSearch(t *testing.T) {
	t.Run("rejects empty term before storage", func(t *testing.T) {
		f := newProductFixture()

		_, err := f.uc.Search(context.Background(), &SearchProductsReq{Term: "   "})
		require.ErrorIs(t, err, e.ErrEmptySearchTerm)
		assert.Nil(t, f.queries.lastSearch)
	})

	t.Run("applies default paging", func(t *testing.T) {
		f := newProductFixture()

		res, err := f.uc.Search(context.Background(), &SearchProductsReq{Term: "mouse"})
		require.NoError(t, err)

		require.NotNil(t, f.queries.lastSearch)
		assert.Equal(t, 1, f.queries.lastSearch.Page)
		assert.Equal(t, 100, f.queries.lastSearch.PageSize)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 100, res.PageSize)
	})

	t.Run("trims term and keeps explicit paging", func(t *testing.T) {
		f := newProductFixture()
		f.queries.searchRes = []ProductInfo{{Name: "mouse"}}
		f.queries.searchCnt = 42

		res, err := f.uc.Search(context.Background(), &SearchProductsReq{Term: " mouse ", Page: 2, PageSize: 10})
		require.NoError(t, err)

		assert.Equal(t, "mouse", f.queries.lastSearch.Term)
		assert.Equal(t, 2, f.queries.lastSearch.Page)
		assert.Equal(t, int64(42), res.TotalCount)
		assert.Len(t, res.Items, 1)
	})

	t.Run("caches results per filter set", func(t *testing.T) {
		f := newProductFixture()
		f.queries.searchRes = []ProductInfo{{Name: "mouse"}}
		f.queries.searchCnt = 1

		_, err := f.uc.Search(context.Background(), &SearchProductsReq{Term: "mouse"})
		require.NoError(t, err)

		_, cached := f.cache.store["products:all:search:mouse:1:100::::"]
		assert.True(t, cached)

		// повторный запрос с теми же фильтрами идёт из кэша
		f.queries.lastSearch = nil
		res, err := f.uc.Search(context.Background(), &SearchProductsReq{Term: "mouse"})
		require.NoError(t, err)
		assert.Nil(t, f.queries.lastSearch)
		assert.Equal(t, int64(1), res.TotalCount)
	})
}

func TestProductList(t *testing.T) {
	t.Run("caches list under products:all", func(t *testing.T) {
		f := newProductFixture()
		f.queries.listRes = []ProductInfo{{Name: "mouse"}}

		items, err := f.uc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)

		_, cached := f.cache.store["products:all"]
		assert.True(t, cached)

		// повторное чтение идёт из кэша
		_, err = f.uc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, f.queries.listCalls)
	})
}

func TestProductPublishFailureIsSwallowed(t *testing.T) {
	f := newProductFixture()
	f.publisher.err = assert.AnError
	brand := f.seedBrand("Logitech")

	info, err := f.uc.Create(context.Background(), validCreateReq(brand.ID))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Len(t, f.products.products, 1)
}
