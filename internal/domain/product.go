package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Источник товара: собственный или синхронизированный от поставщика.
const (
	SourceOwn      = "own"
	SourceSupplier = "supplier"
)

// Product описывает товар каталога
type Product struct {
	Base
	Name               string
	Slug               string
	BrandID            uuid.UUID
	CategoryID         *uuid.UUID
	Price              decimal.Decimal
	OriginalPrice      *decimal.Decimal
	Description        *string
	InStock            bool
	StockQuantity      int
	Rating             decimal.Decimal
	ReviewCount        int
	Images             []string
	Tags               []string
	Featured           bool
	IsCampaign         bool
	DiscountPercentage int
	CampaignEndDate    *time.Time
	ProductSource      string
	LastSyncedAt       *time.Time
}

func NewProduct(name, slug string, brandID uuid.UUID, categoryID *uuid.UUID, price decimal.Decimal) *Product {
	p := &Product{
		Base:          NewBase(),
		Name:          name,
		Slug:          slug,
		BrandID:       brandID,
		CategoryID:    categoryID,
		Price:         price,
		ProductSource: SourceOwn,
	}
	p.SetStock(0)
	return p
}

// SetStock выставляет остаток и производный флаг наличия.
// InStock нигде не выставляется независимо от stock quantity.
func (p *Product) SetStock(quantity int) {
	p.StockQuantity = quantity
	p.InStock = quantity > 0
}
