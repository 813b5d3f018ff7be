package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base — общие поля всех сущностей каталога.
// Встраивается по значению, иерархии наследования нет.
type Base struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBase() Base {
	return Base{ID: uuid.New()}
}
