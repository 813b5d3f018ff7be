package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"product not found", e.ErrProductNotFound, http.StatusNotFound},
		{"brand not found", e.ErrBrandNotFound, http.StatusNotFound},
		{"category not found", e.ErrCategoryNotFound, http.StatusNotFound},
		{"product slug exists", e.ErrProductSlugExists, http.StatusBadRequest},
		{"brand slug exists", e.ErrBrandSlugExists, http.StatusBadRequest},
		{"category slug exists", e.ErrCategorySlugExists, http.StatusBadRequest},
		{"category has products", e.ErrCategoryHasProducts, http.StatusBadRequest},
		{"validation", e.ErrValidation, http.StatusBadRequest},
		{"empty search term", e.ErrEmptySearchTerm, http.StatusBadRequest},
		{"id mismatch", e.ErrIDMismatch, http.StatusBadRequest},
		{"price must be positive", e.ErrPriceMustBePositive, http.StatusBadRequest},
		{"original price too low", e.ErrOriginalPriceTooLow, http.StatusBadRequest},
		{"invalid request body", e.ErrInvalidRequestBody, http.StatusBadRequest},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.code, code)
		})
	}
}

// Обёрнутые по цепочке ошибки сопоставляются так же, как голые.
func TestToHTTPResponseWrapped(t *testing.T) {
	wrapped := e.Wrap("usecase.Product.GetByID", e.ErrProductNotFound)

	code, msg := ToHTTPResponse(wrapped)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, e.ErrProductNotFound.Error(), msg)
}

// Внутренние детали неизвестных ошибок не утекают клиенту.
func TestToHTTPResponseHidesInternals(t *testing.T) {
	_, msg := ToHTTPResponse(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, e.ErrProductNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"product not found"}`, rec.Body.String())
}

func TestWriteSuccessNoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Mouse"`))

	var dest struct {
		Name string `json:"name"`
	}

	err := decodeBody(req, &dest)
	require.ErrorIs(t, err, e.ErrInvalidRequestBody)
}

func TestPathID(t *testing.T) {
	id := uuid.New()

	parsed, err := pathID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = pathID("not-a-uuid")
	require.ErrorIs(t, err, e.ErrInvalidRequestBody)
}

func TestQueryParsers(t *testing.T) {
	t.Run("absent params give defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)

		b, err := queryBool(req, "isActive")
		require.NoError(t, err)
		assert.Nil(t, b)

		u, err := queryUUID(req, "brandId")
		require.NoError(t, err)
		assert.Nil(t, u)

		n, err := queryInt(req, "page", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		d, err := queryDecimal(req, "minPrice")
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("parses present params", func(t *testing.T) {
		id := uuid.New()
		req := httptest.NewRequest(http.MethodGet,
			"/api/products?isActive=true&brandId="+id.String()+"&page=3&minPrice=19.99", nil)

		b, err := queryBool(req, "isActive")
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.True(t, *b)

		u, err := queryUUID(req, "brandId")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, id, *u)

		n, err := queryInt(req, "page", 1)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		d, err := queryDecimal(req, "minPrice")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.True(t, decimal.RequireFromString("19.99").Equal(*d))
	})

	t.Run("rejects malformed params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/products?isActive=maybe&brandId=xyz&page=ten&minPrice=cheap", nil)

		_, err := queryBool(req, "isActive")
		require.ErrorIs(t, err, e.ErrInvalidRequestBody)

		_, err = queryUUID(req, "brandId")
		require.ErrorIs(t, err, e.ErrInvalidRequestBody)

		_, err = queryInt(req, "page", 1)
		require.ErrorIs(t, err, e.ErrInvalidRequestBody)

		_, err = queryDecimal(req, "minPrice")
		require.ErrorIs(t, err, e.ErrInvalidRequestBody)
	})
}
