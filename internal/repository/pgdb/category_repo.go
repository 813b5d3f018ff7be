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

// CategoryRepo реализует репозиторий записи категорий поверх PostgreSQL.
type CategoryRepo struct {
	conv converter.CategoryConverter
}

func NewCategoryRepo(conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{conv: conv}
}

func (c *CategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT
			id, name, slug, parent_id, is_active, description,
			image_url, display_order, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var model converter.CategoryModel
	err = tx.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Name, &model.Slug, &model.ParentID,
		&model.IsActive, &model.Description, &model.ImageURL,
		&model.DisplayOrder, &model.CreatedAt, &model.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.ErrCategoryNotFound
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.conv.ToModel(category)

	query := `
		INSERT INTO categories (
			id, name, slug, parent_id, is_active, description,
			image_url, display_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, query,
		model.ID, model.Name, model.Slug, model.ParentID,
		model.IsActive, model.Description, model.ImageURL,
		model.DisplayOrder, model.CreatedAt, model.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), translateUniqueViolation(err, "categories_slug_key", e.ErrCategorySlugExists))
	}

	return nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.conv.ToModel(category)

	query := `
		UPDATE categories
		SET
			name = $2, slug = $3, parent_id = $4, is_active = $5,
			description = $6, image_url = $7, display_order = $8,
			updated_at = $9
		WHERE id = $1
	`

	ct, err := tx.Exec(ctx, query,
		model.ID, model.Name, model.Slug, model.ParentID,
		model.IsActive, model.Description, model.ImageURL,
		model.DisplayOrder, model.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), translateUniqueViolation(err, "categories_slug_key", e.ErrCategorySlugExists))
	}
	if ct.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if ct.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}
