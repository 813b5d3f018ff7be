package http

import (
	"net/http"

	"github.com/Ekrem-A/Catalog.Api/internal/usecase"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// listCategories возвращает категории с фильтрами по активности и родителю.
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	isActive, err := queryBool(r, "isActive")
	if err != nil {
		WriteError(w, err)
		return
	}

	parentID, err := queryUUID(r, "parentId")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := c.categoryUsecase.List(r.Context(), &usecase.GetCategoriesReq{
		IsActive: isActive,
		ParentID: parentID,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, items)
}

func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateCategoryReq
	if err := decodeBody(r, &req); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	info, err := c.categoryUsecase.Create(r.Context(), &req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/categories/"+info.ID.String())
	WriteSuccess(w, http.StatusCreated, info)
}

func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.UpdateCategoryReq
	if err := decodeBody(r, &req); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if req.ID != uuid.Nil && req.ID != id {
		c.logger.Warnf("%s: path %s, body %s", e.ErrIDMismatch.Error(), id, req.ID)
		WriteError(w, e.ErrIDMismatch)
		return
	}
	req.ID = id

	info, err := c.categoryUsecase.Update(r.Context(), &req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, info)
}

// deleteCategory удаляет категорию. Категория с товарами не удаляется.
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.Delete(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
