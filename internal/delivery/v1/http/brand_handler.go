package http

import (
	"net/http"

	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BrandHandler struct {
	brandUsecase usecase.BrandUC
	logger       logger.Logger
}

func NewBrandHandler(brandUsecase usecase.BrandUC, logger logger.Logger) *BrandHandler {
	return &BrandHandler{brandUsecase: brandUsecase, logger: logger}
}

// listBrands возвращает бренды с фильтром по активности.
func (b *BrandHandler) listBrands(w http.ResponseWriter, r *http.Request) {
	isActive, err := queryBool(r, "isActive")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := b.brandUsecase.List(r.Context(), &usecase.GetBrandsReq{IsActive: isActive})
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, items)
}

func (b *BrandHandler) createBrand(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateBrandReq
	if err := decodeBody(r, &req); err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	info, err := b.brandUsecase.Create(r.Context(), &req)
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/brands/"+info.ID.String())
	WriteSuccess(w, http.StatusCreated, info)
}

func (b *BrandHandler) updateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.UpdateBrandReq
	if err := decodeBody(r, &req); err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if req.ID != uuid.Nil && req.ID != id {
		b.logger.Warnf("%s: path %s, body %s", e.ErrIDMismatch.Error(), id, req.ID)
		WriteError(w, e.ErrIDMismatch)
		return
	}
	req.ID = id

	info, err := b.brandUsecase.Update(r.Context(), &req)
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, info)
}
