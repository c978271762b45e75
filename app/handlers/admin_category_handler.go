package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type AdminCategoryHandler struct {
	categoryRepo repositories.CategoryRepository
	render       *render.Render
	validate     *validator.Validate
}

func NewAdminCategoryHandler(categoryRepo repositories.CategoryRepository, rnd *render.Render, validate *validator.Validate) *AdminCategoryHandler {
	return &AdminCategoryHandler{
		categoryRepo: categoryRepo,
		render:       rnd,
		validate:     validate,
	}
}

type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID string `json:"parentId"`
}

func (h *AdminCategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	category := &models.Category{
		Name:  req.Name,
		Slug:  slug.Make(req.Name),
		Level: models.CategoryLevelTop,
	}

	if req.ParentID != "" {
		parent, err := h.categoryRepo.FindByID(r.Context(), req.ParentID)
		if err != nil {
			respondError(h.render, w, err)
			return
		}
		if parent == nil {
			respondError(h.render, w, services.ErrCategoryNotFound)
			return
		}
		if parent.Level >= models.CategoryLevelThird {
			respondValidation(h.render, w, "categories can be nested at most three levels deep")
			return
		}
		category.ParentID = &parent.ID
		category.Level = parent.Level + 1
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminCategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	category, err := h.categoryRepo.FindByID(r.Context(), categoryID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if category == nil {
		respondError(h.render, w, services.ErrCategoryNotFound)
		return
	}

	category.Name = req.Name
	category.Slug = slug.Make(req.Name)

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *AdminCategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryRepo.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
