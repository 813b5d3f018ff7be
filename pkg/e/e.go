package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")
	ErrTransactionActive   = fmt.Errorf("transaction already active")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrBrandNotFound    = fmt.Errorf("brand not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// 400: конфликт уникальности slug
	ErrProductSlugExists  = fmt.Errorf("product with this slug already exists")
	ErrBrandSlugExists    = fmt.Errorf("brand with this slug already exists")
	ErrCategorySlugExists = fmt.Errorf("category with this slug already exists")

	// 400: удаление заблокировано ссылающимися строками
	ErrCategoryHasProducts = fmt.Errorf("cannot delete category that has products")

	// 400 Bad Request
	ErrValidation          = fmt.Errorf("validation failed")
	ErrEmptySearchTerm     = fmt.Errorf("search term must not be empty")
	ErrIDMismatch          = fmt.Errorf("id in path does not match id in body")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrOriginalPriceTooLow = fmt.Errorf("original price must not be less than price")
	ErrInvalidRequestBody  = fmt.Errorf("invalid request body")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
