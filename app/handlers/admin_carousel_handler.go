package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/unrolled/render"
)

type AdminCarouselHandler struct {
	carouselRepo repositories.CarouselRepository
	render       *render.Render
	validate     *validator.Validate
}

func NewAdminCarouselHandler(carouselRepo repositories.CarouselRepository, rnd *render.Render, validate *validator.Validate) *AdminCarouselHandler {
	return &AdminCarouselHandler{
		carouselRepo: carouselRepo,
		render:       rnd,
		validate:     validate,
	}
}

type CarouselRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl" validate:"required"`
	LinkURL  string `json:"linkUrl"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}

func (h *AdminCarouselHandler) ListCarousels(w http.ResponseWriter, r *http.Request) {
	carousels, err := h.carouselRepo.FindAll(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, carousels)
}

func (h *AdminCarouselHandler) CreateCarousel(w http.ResponseWriter, r *http.Request) {
	var req CarouselRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	carousel := &models.Carousel{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		IsActive: req.IsActive,
	}

	if err := h.carouselRepo.Create(r.Context(), carousel); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, carousel)
}

func (h *AdminCarouselHandler) UpdateCarousel(w http.ResponseWriter, r *http.Request) {
	carouselID := mux.Vars(r)["id"]

	var req CarouselRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	carousel, err := h.carouselRepo.FindByID(r.Context(), carouselID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if carousel == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "carousel not found"})
		return
	}

	carousel.Title = req.Title
	carousel.ImageURL = req.ImageURL
	carousel.LinkURL = req.LinkURL
	carousel.Position = req.Position
	carousel.IsActive = req.IsActive

	if err := h.carouselRepo.Update(r.Context(), carousel); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, carousel)
}

func (h *AdminCarouselHandler) DeleteCarousel(w http.ResponseWriter, r *http.Request) {
	if err := h.carouselRepo.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "carousel deleted"})
}
