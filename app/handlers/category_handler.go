package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	categoryRepo repositories.CategoryRepository
	render       *render.Render
}

func NewCategoryHandler(categoryRepo repositories.CategoryRepository, rnd *render.Render) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		render:       rnd,
	}
}

// ListCategories returns the whole three-level category tree.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.FindTopLevel(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.FindByID(r.Context(), categoryID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if category == nil {
		respondError(h.render, w, services.ErrCategoryNotFound)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, category)
}
