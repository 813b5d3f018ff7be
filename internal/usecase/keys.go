package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ключи кэша. Инвалидация при записи идёт по префиксу сущности,
// поэтому все ключи одной сущности обязаны начинаться с её префикса.
const (
	productKeyPrefix  = "products:"
	categoryKeyPrefix = "categories:"
	brandKeyPrefix    = "brands:"
)

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

func productsAllKey() string {
	return productKeyPrefix + "all"
}

// productsSearchKey детерминированно собирает ключ из всех параметров
// поиска, чтобы разные фильтры не делили одну запись кэша.
func productsSearchKey(req *SearchProductsReq) string {
	return fmt.Sprintf("%sall:search:%s:%d:%d:%s:%s:%s:%s",
		productKeyPrefix,
		req.Term,
		req.Page,
		req.PageSize,
		uuidFilter(req.CategoryID),
		uuidFilter(req.BrandID),
		decimalFilter(req.MinPrice),
		decimalFilter(req.MaxPrice),
	)
}

func categoriesKey(isActive *bool, parentID *uuid.UUID) string {
	return fmt.Sprintf("%sall:%s:%s", categoryKeyPrefix, boolFilter(isActive), uuidFilter(parentID))
}

func brandsKey(isActive *bool) string {
	return fmt.Sprintf("%sall:%s", brandKeyPrefix, boolFilter(isActive))
}

func boolFilter(v *bool) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf("%t", *v)
}

func uuidFilter(v *uuid.UUID) string {
	if v == nil {
		return ""
	}

	return v.String()
}

func decimalFilter(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}

	return v.String()
}
