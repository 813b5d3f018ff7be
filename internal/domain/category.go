package domain

import "github.com/google/uuid"

// Category описывает категорию товаров. Дерево категорий строится
// по ParentID (self-reference), удаление родителя с детьми запрещено.
type Category struct {
	Base
	Name         string
	Slug         string
	ParentID     *uuid.UUID
	IsActive     bool
	DisplayOrder int
	Description  *string
	ImageURL     *string
}

func NewCategory(name, slug string, parentID *uuid.UUID) *Category {
	return &Category{
		Base:     NewBase(),
		Name:     name,
		Slug:     slug,
		ParentID: parentID,
		IsActive: true,
	}
}
