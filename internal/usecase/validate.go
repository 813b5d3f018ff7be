package usecase

import (
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateReq проверяет структурные правила запроса (validate-теги).
func validateReq(req any) error {
	if err := validate.Struct(req); err != nil {
		return e.Wrap(err.Error(), e.ErrValidation)
	}

	return nil
}

// validatePricing проверяет денежные инварианты, не выразимые тегами:
// цена строго положительна, исходная цена не ниже текущей.
func validatePricing(price decimal.Decimal, originalPrice *decimal.Decimal) error {
	if !price.IsPositive() {
		return e.ErrPriceMustBePositive
	}

	if originalPrice != nil && originalPrice.LessThan(price) {
		return e.ErrOriginalPriceTooLow
	}

	return nil
}
