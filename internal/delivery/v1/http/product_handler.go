package http

import (
	"net/http"

	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts возвращает все товары каталога.
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	items, err := p.productUsecase.List(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, items)
}

// searchProducts ищет товары по термину с опциональными фильтрами.
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchReq(r)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.Search(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getProduct возвращает товар по идентификатору.
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, info)
}

// createProduct создаёт товар и отдаёт 201 с заголовком Location.
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateProductReq
	if err := decodeBody(r, &req); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.Create(r.Context(), &req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/products/"+info.ID.String())
	WriteSuccess(w, http.StatusCreated, info)
}

// updateProduct полностью обновляет товар. Идентификатор в теле,
// если задан, обязан совпадать с идентификатором в пути.
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.UpdateProductReq
	if err := decodeBody(r, &req); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if req.ID != uuid.Nil && req.ID != id {
		p.logger.Warnf("%s: path %s, body %s", e.ErrIDMismatch.Error(), id, req.ID)
		WriteError(w, e.ErrIDMismatch)
		return
	}
	req.ID = id

	info, err := p.productUsecase.Update(r.Context(), &req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, info)
}

// deleteProduct удаляет товар, 204 при успехе.
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

func parseSearchReq(r *http.Request) (*usecase.SearchProductsReq, error) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return nil, err
	}

	pageSize, err := queryInt(r, "pageSize", 0)
	if err != nil {
		return nil, err
	}

	categoryID, err := queryUUID(r, "categoryId")
	if err != nil {
		return nil, err
	}

	brandID, err := queryUUID(r, "brandId")
	if err != nil {
		return nil, err
	}

	minPrice, err := queryDecimal(r, "minPrice")
	if err != nil {
		return nil, err
	}

	maxPrice, err := queryDecimal(r, "maxPrice")
	if err != nil {
		return nil, err
	}

	return &usecase.SearchProductsReq{
		Term:       r.URL.Query().Get("searchTerm"),
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
		BrandID:    brandID,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}, nil
}
