package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет доменную ошибку с HTTP-статусом.
// Неизвестные ошибки не раскрываются клиенту.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrBrandNotFound):
		return http.StatusNotFound, e.ErrBrandNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrProductSlugExists):
		return http.StatusBadRequest, e.ErrProductSlugExists.Error()
	case errors.Is(err, e.ErrBrandSlugExists):
		return http.StatusBadRequest, e.ErrBrandSlugExists.Error()
	case errors.Is(err, e.ErrCategorySlugExists):
		return http.StatusBadRequest, e.ErrCategorySlugExists.Error()
	case errors.Is(err, e.ErrCategoryHasProducts):
		return http.StatusBadRequest, e.ErrCategoryHasProducts.Error()
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, e.ErrValidation.Error()
	case errors.Is(err, e.ErrEmptySearchTerm):
		return http.StatusBadRequest, e.ErrEmptySearchTerm.Error()
	case errors.Is(err, e.ErrIDMismatch):
		return http.StatusBadRequest, e.ErrIDMismatch.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrOriginalPriceTooLow):
		return http.StatusBadRequest, e.ErrOriginalPriceTooLow.Error()
	case errors.Is(err, e.ErrInvalidRequestBody):
		return http.StatusBadRequest, e.ErrInvalidRequestBody.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// decodeBody разбирает JSON-тело запроса в dest.
func decodeBody(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidRequestBody)
	}

	return nil
}

// pathID разбирает UUID из параметра пути.
func pathID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, e.Wrap(value, e.ErrInvalidRequestBody)
	}

	return id, nil
}

// queryBool разбирает опциональный булев параметр запроса.
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, e.Wrap(name, e.ErrInvalidRequestBody)
	}

	return &value, nil
}

// queryUUID разбирает опциональный UUID-параметр запроса.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := uuid.Parse(raw)
	if err != nil {
		return nil, e.Wrap(name, e.ErrInvalidRequestBody)
	}

	return &value, nil
}

// queryInt разбирает опциональный целочисленный параметр запроса,
// отсутствие даёт значение по умолчанию.
func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(name, e.ErrInvalidRequestBody)
	}

	return value, nil
}

// queryDecimal разбирает опциональный денежный параметр запроса.
func queryDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, e.Wrap(name, e.ErrInvalidRequestBody)
	}

	return &value, nil
}
