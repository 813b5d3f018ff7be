package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/repository/pgdb/converter"
	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productRowColumns = `
	p.id, p.name, p.slug, p.brand_id, p.category_id, p.price,
	p.original_price, p.description, p.in_stock, p.stock_quantity,
	p.rating, p.review_count, p.images, p.tags, p.featured,
	p.is_campaign, p.discount_percentage, p.campaign_end_date,
	p.product_source, p.last_synced_at, p.created_at, p.updated_at,
	b.name AS brand_name, b.logo_url AS brand_logo_url,
	c.name AS category_name`

const productRowFrom = `
	FROM products p
	JOIN brands b ON b.id = p.brand_id
	LEFT JOIN categories c ON c.id = p.category_id`

// ProductQueryRepo — сервис чтения товаров. Работает через пул,
// вне транзакций, и собирает DTO с присоединёнными сущностями.
type ProductQueryRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductQueryRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductQueryRepo {
	return &ProductQueryRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductQueryRepo) GetWithRelations(ctx context.Context, id uuid.UUID) (*usecase.ProductInfo, error) {
	query := `SELECT` + productRowColumns + productRowFrom + `
	WHERE p.id = $1`

	row, err := p.scanRow(p.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrProductNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	info := p.conv.ToInfo(row, time.Now().UTC())

	return &info, nil
}

func (p *ProductQueryRepo) ListWithRelations(ctx context.Context) ([]usecase.ProductInfo, error) {
	query := `SELECT` + productRowColumns + productRowFrom + `
	ORDER BY p.created_at DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.collect(rows)
}

// Search ищет товары по термину в названии, описании, бренде и категории.
// Опциональные фильтры комбинируются по AND, количество считается до
// применения пагинации.
func (p *ProductQueryRepo) Search(ctx context.Context, req *usecase.SearchProductsReq) ([]usecase.ProductInfo, int64, error) {
	conds := []string{`(p.name ILIKE $1 OR p.description ILIKE $1 OR b.name ILIKE $1 OR c.name ILIKE $1)`}
	args := []any{"%" + req.Term + "%"}

	if req.CategoryID != nil {
		args = append(args, *req.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if req.BrandID != nil {
		args = append(args, *req.BrandID)
		conds = append(conds, fmt.Sprintf("p.brand_id = $%d", len(args)))
	}

	if req.MinPrice != nil {
		args = append(args, *req.MinPrice)
		conds = append(conds, fmt.Sprintf("p.price >= $%d", len(args)))
	}

	if req.MaxPrice != nil {
		args = append(args, *req.MaxPrice)
		conds = append(conds, fmt.Sprintf("p.price <= $%d", len(args)))
	}

	where := strings.Join(conds, " AND ")

	countQuery := `SELECT COUNT(*)` + productRowFrom + `
	WHERE ` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	args = append(args, req.PageSize, (req.Page-1)*req.PageSize)
	pageQuery := `SELECT` + productRowColumns + productRowFrom + `
	WHERE ` + where + fmt.Sprintf(`
	ORDER BY p.created_at DESC
	LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := p.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items, err := p.collect(rows)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (p *ProductQueryRepo) collect(rows pgx.Rows) ([]usecase.ProductInfo, error) {
	now := time.Now().UTC()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		row, err := p.scanRow(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, p.conv.ToInfo(row, now))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductQueryRepo) scanRow(row pgx.Row) (*converter.ProductRow, error) {
	var model converter.ProductRow
	err := row.Scan(
		&model.ID, &model.Name, &model.Slug, &model.BrandID, &model.CategoryID,
		&model.Price, &model.OriginalPrice, &model.Description, &model.InStock,
		&model.StockQuantity, &model.Rating, &model.ReviewCount,
		&model.Images, &model.Tags, &model.Featured, &model.IsCampaign,
		&model.DiscountPercentage, &model.CampaignEndDate, &model.ProductSource,
		&model.LastSyncedAt, &model.CreatedAt, &model.UpdatedAt,
		&model.BrandName, &model.BrandLogoURL, &model.CategoryName,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
