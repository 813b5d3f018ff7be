package pgdb

import (
	"context"
	"strconv"

	"github.com/Ekrem-A/Catalog.Api/internal/repository/pgdb/converter"
	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// parentRef — облегчённая запись категории для построения дерева.
type parentRef struct {
	name     string
	parentID *uuid.UUID
}

// CategoryQueryRepo — сервис чтения категорий. Уровень и имя родителя
// вычисляются по полному дереву, подгружаемому отдельным запросом.
type CategoryQueryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryQueryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryQueryRepo {
	return &CategoryQueryRepo{
		pool: pool,
		conv: conv,
	}
}

func (c *CategoryQueryRepo) ListFiltered(ctx context.Context, isActive *bool, parentID *uuid.UUID) ([]usecase.CategoryInfo, error) {
	query := `
		SELECT
			c.id, c.name, c.slug, c.parent_id, c.is_active, c.description,
			c.image_url, c.display_order, c.created_at, c.updated_at,
			COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE ($1::boolean IS NULL OR c.is_active = $1)
		  AND ($2::uuid IS NULL OR c.parent_id = $2)
		GROUP BY c.id
		ORDER BY c.display_order, c.name
	`

	rows, err := c.pool.Query(ctx, query, isActive, parentID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var (
		models []converter.CategoryModel
		counts []int
	)
	for rows.Next() {
		var (
			model converter.CategoryModel
			count int
		)
		err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.ParentID,
			&model.IsActive, &model.Description, &model.ImageURL,
			&model.DisplayOrder, &model.CreatedAt, &model.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	parents, err := c.loadTree(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]usecase.CategoryInfo, 0, len(models))
	for i := range models {
		level := categoryLevel(models[i].ID, parents)

		var parentName *string
		if models[i].ParentID != nil {
			if ref, ok := parents[*models[i].ParentID]; ok {
				name := ref.name
				parentName = &name
			}
		}

		result = append(result, c.conv.ToInfo(&models[i], level, parentName, counts[i]))
	}

	return result, nil
}

// loadTree подгружает всё дерево категорий одним запросом.
func (c *CategoryQueryRepo) loadTree(ctx context.Context) (map[uuid.UUID]parentRef, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, name, parent_id FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parents := make(map[uuid.UUID]parentRef)
	for rows.Next() {
		var (
			id  uuid.UUID
			ref parentRef
		)
		if err := rows.Scan(&id, &ref.name, &ref.parentID); err != nil {
			return nil, err
		}

		parents[id] = ref
	}

	return parents, rows.Err()
}

// categoryLevel считает глубину категории от корня, "1" для корневой.
// Посещённые узлы отслеживаются на случай цикла в parent_id.
func categoryLevel(id uuid.UUID, parents map[uuid.UUID]parentRef) string {
	level := 1
	seen := map[uuid.UUID]bool{id: true}

	cur := parents[id].parentID
	for cur != nil && !seen[*cur] {
		seen[*cur] = true
		level++
		cur = parents[*cur].parentID
	}

	return strconv.Itoa(level)
}
