package pgdb

import (
	"context"
	"errors"

	"github.com/Ekrem-A/Catalog.Api/internal/domain"
	"github.com/Ekrem-A/Catalog.Api/internal/repository/pgdb/converter"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий записи товаров поверх PostgreSQL.
// Все методы работают внутри транзакции из контекста.
type ProductRepo struct {
	conv converter.ProductConverter
}

func NewProductRepo(conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{conv: conv}
}

func (p *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT
			id, name, slug, brand_id, category_id, price, original_price,
			description, in_stock, stock_quantity, rating, review_count,
			images, tags, featured, is_campaign, discount_percentage,
			campaign_end_date, product_source, last_synced_at,
			created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Slug, &model.BrandID, &model.CategoryID,
		&model.Price, &model.OriginalPrice, &model.Description, &model.InStock,
		&model.StockQuantity, &model.Rating, &model.ReviewCount,
		&model.Images, &model.Tags, &model.Featured, &model.IsCampaign,
		&model.DiscountPercentage, &model.CampaignEndDate, &model.ProductSource,
		&model.LastSyncedAt, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrProductNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (p *ProductRepo) ExistsByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`

	var exists bool
	if err := tx.QueryRow(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)

	query := `
		INSERT INTO products (
			id, name, slug, brand_id, category_id, price, original_price,
			description, in_stock, stock_quantity, rating, review_count,
			images, tags, featured, is_campaign, discount_percentage,
			campaign_end_date, product_source, last_synced_at,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)
	`

	_, err = tx.Exec(ctx, query,
		model.ID, model.Name, model.Slug, model.BrandID, model.CategoryID,
		model.Price, model.OriginalPrice, model.Description, model.InStock,
		model.StockQuantity, model.Rating, model.ReviewCount,
		model.Images, model.Tags, model.Featured, model.IsCampaign,
		model.DiscountPercentage, model.CampaignEndDate, model.ProductSource,
		model.LastSyncedAt, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), translateUniqueViolation(err, "products_slug_key", e.ErrProductSlugExists))
	}

	return nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)

	query := `
		UPDATE products
		SET
			name = $2, slug = $3, brand_id = $4, category_id = $5,
			price = $6, original_price = $7, description = $8,
			in_stock = $9, stock_quantity = $10, rating = $11,
			review_count = $12, images = $13, tags = $14, featured = $15,
			is_campaign = $16, discount_percentage = $17,
			campaign_end_date = $18, product_source = $19,
			last_synced_at = $20, updated_at = $21
		WHERE id = $1
	`

	ct, err := tx.Exec(ctx, query,
		model.ID, model.Name, model.Slug, model.BrandID, model.CategoryID,
		model.Price, model.OriginalPrice, model.Description, model.InStock,
		model.StockQuantity, model.Rating, model.ReviewCount,
		model.Images, model.Tags, model.Featured, model.IsCampaign,
		model.DiscountPercentage, model.CampaignEndDate, model.ProductSource,
		model.LastSyncedAt, model.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), translateUniqueViolation(err, "products_slug_key", e.ErrProductSlugExists))
	}
	if ct.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

func (p *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if ct.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}
