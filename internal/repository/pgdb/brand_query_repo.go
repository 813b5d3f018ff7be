package pgdb

import (
	"context"

	"github.com/Ekrem-A/Catalog.Api/internal/repository/pgdb/converter"
	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// BrandQueryRepo — сервис чтения брендов с количеством товаров.
type BrandQueryRepo struct {
	pool *pgxpool.Pool
	conv converter.BrandConverter
}

func NewBrandQueryRepo(pool *pgxpool.Pool, conv converter.BrandConverter) *BrandQueryRepo {
	return &BrandQueryRepo{
		pool: pool,
		conv: conv,
	}
}

func (b *BrandQueryRepo) List(ctx context.Context, isActive *bool) ([]usecase.BrandInfo, error) {
	query := `
		SELECT
			b.id, b.name, b.slug, b.description, b.logo_url, b.website_url,
			b.is_active, b.display_order, b.created_at, b.updated_at,
			COUNT(p.id) AS product_count
		FROM brands b
		LEFT JOIN products p ON p.brand_id = b.id
		WHERE ($1::boolean IS NULL OR b.is_active = $1)
		GROUP BY b.id
		ORDER BY b.display_order, b.name
	`

	rows, err := b.pool.Query(ctx, query, isActive)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.BrandInfo, 0)
	for rows.Next() {
		var (
			model converter.BrandModel
			count int
		)
		err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Description,
			&model.LogoURL, &model.WebsiteURL, &model.IsActive,
			&model.DisplayOrder, &model.CreatedAt, &model.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, b.conv.ToInfo(&model, count))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
