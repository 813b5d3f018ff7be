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

type categoryFixture struct {
	uc         *CategoryUseCase
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	queries    *fakeCategoryQueries
	cache      *fakeCache
	publisher  *fakePublisher
}

func newCategoryFixture() *categoryFixture {
	f := &categoryFixture{
		categories: newFakeCategoryRepo(),
		products:   newFakeProductRepo(),
		cache:      newFakeCache(),
		publisher:  &fakePublisher{},
	}
	f.queries = &fakeCategoryQueries{repo: f.categories}

	f.uc = NewCategoryUC(
		f.categories,
		f.products,
		f.queries,
		&fakeTxManager{},
		f.cache,
		f.publisher,
		10*time.Minute,
		nopLogger{},
	)

	return f
}

func (f *categoryFixture) seedCategory(slug string) *domain.Category {
	category := domain.NewCategory("seeded", slug, nil)
	f.categories.categories[category.ID] = category

	return category
}

func TestCategoryCreate(t *testing.T) {
	t.Run("creates category and publishes event", func(t *testing.T) {
		f := newCategoryFixture()

		info, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "Mice", Slug: "mice"})
		require.NoError(t, err)
		assert.Equal(t, "mice", info.Slug)

		require.Len(t, f.categories.categories, 1)
		require.Len(t, f.publisher.byTopic(TopicCategoryCreated), 1)
		assert.Contains(t, f.cache.deletedPrefixes, "categories:")
	})

	t.Run("rejects missing parent", func(t *testing.T) {
		f := newCategoryFixture()
		missing := uuid.New()

		_, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "Mice", Slug: "mice", ParentID: &missing})
		require.ErrorIs(t, err, e.ErrCategoryNotFound)
		assert.Empty(t, f.categories.categories)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		f := newCategoryFixture()
		f.seedCategory("mice")

		_, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "Mice", Slug: "mice"})
		require.ErrorIs(t, err, e.ErrCategorySlugExists)
		assert.Len(t, f.categories.categories, 1)
		assert.Empty(t, f.publisher.events)
	})
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("updates and publishes event", func(t *testing.T) {
		f := newCategoryFixture()
		category := f.seedCategory("mice")

		req := &UpdateCategoryReq{
			ID:       category.ID,
			Name:     "Gaming Mice",
			Slug:     "mice",
			IsActive: false,
		}

		_, err := f.uc.Update(context.Background(), req)
		require.NoError(t, err)

		stored := f.categories.categories[category.ID]
		assert.Equal(t, "Gaming Mice", stored.Name)
		assert.False(t, stored.IsActive)

		events := f.publisher.byTopic(TopicCategoryUpdated)
		require.Len(t, events, 1)
		assert.False(t, events[0].event.(CategoryUpdatedEvent).IsActive)
	})

	t.Run("returns not found for unknown category", func(t *testing.T) {
		f := newCategoryFixture()

		_, err := f.uc.Update(context.Background(), &UpdateCategoryReq{ID: uuid.New(), Name: "X", Slug: "x"})
		require.ErrorIs(t, err, e.ErrCategoryNotFound)
	})
}

func TestCategoryDelete(t *testing.T) {
	t.Run("deletes empty category", func(t *testing.T) {
		f := newCategoryFixture()
		category := f.seedCategory("mice")

		err := f.uc.Delete(context.Background(), category.ID)
		require.NoError(t, err)
		assert.Empty(t, f.categories.categories)
		assert.Contains(t, f.cache.deletedPrefixes, "categories:")
	})

	t.Run("blocks category with products", func(t *testing.T) {
		f := newCategoryFixture()
		category := f.seedCategory("mice")

		product := domain.NewProduct("mouse", "mouse", uuid.New(), &category.ID, decimal.NewFromInt(10))
		f.products.products[product.ID] = product

		err := f.uc.Delete(context.Background(), category.ID)
		require.ErrorIs(t, err, e.ErrCategoryHasProducts)

		assert.Len(t, f.categories.categories, 1)
		assert.Empty(t, f.cache.deletedPrefixes)
	})

	t.Run("returns not found for unknown category", func(t *testing.T) {
		f := newCategoryFixture()

		err := f.uc.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, e.ErrCategoryNotFound)
	})
}

func TestCategoryList(t *testing.T) {
	t.Run("caches filtered list", func(t *testing.T) {
		f := newCategoryFixture()
		f.queries.items = []CategoryInfo{{Name: "Mice"}}

		isActive := true
		req := &GetCategoriesReq{IsActive: &isActive}

		items, err := f.uc.List(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, items, 1)

		_, cached := f.cache.store["categories:all:true:"]
		assert.True(t, cached)

		_, err = f.uc.List(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, f.queries.calls)
	})
}
