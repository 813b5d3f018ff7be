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

// BrandRepo реализует репозиторий записи брендов поверх PostgreSQL.
type BrandRepo struct {
	conv converter.BrandConverter
}

func NewBrandRepo(conv converter.BrandConverter) *BrandRepo {
	return &BrandRepo{conv: conv}
}

func (b *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT
			id, name, slug, description, logo_url, website_url,
			is_active, display_order, created_at, updated_at
		FROM brands
		WHERE id = $1
	`

	var model converter.BrandModel
	err = tx.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description,
		&model.LogoURL, &model.WebsiteURL, &model.IsActive,
		&model.DisplayOrder, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrBrandNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BrandRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT EXISTS (SELECT 1 FROM brands WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (b *BrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := b.conv.ToModel(brand)

	query := `
		INSERT INTO brands (
			id, name, slug, description, logo_url, website_url,
			is_active, display_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, query,
		model.ID, model.Name, model.Slug, model.Description,
		model.LogoURL, model.WebsiteURL, model.IsActive,
		model.DisplayOrder, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), translateUniqueViolation(err, "brands_slug_key", e.ErrBrandSlugExists))
	}

	return nil
}

func (b *BrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := b.conv.ToModel(brand)

	query := `
		UPDATE brands
		SET
			name = $2, slug = $3, description = $4, logo_url = $5,
			website_url = $6, is_active = $7, display_order = $8,
			updated_at = $9
		WHERE id = $1
	`

	ct, err := tx.Exec(ctx, query,
		model.ID, model.Name, model.Slug, model.Description,
		model.LogoURL, model.WebsiteURL, model.IsActive,
		model.DisplayOrder, model.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), translateUniqueViolation(err, "brands_slug_key", e.ErrBrandSlugExists))
	}
	if ct.RowsAffected() == 0 {
		return e.ErrBrandNotFound
	}

	return nil
}
