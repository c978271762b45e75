package handlers

import (
	"net/http"

	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/unrolled/render"
)

type CarouselHandler struct {
	carouselRepo repositories.CarouselRepository
	render       *render.Render
}

func NewCarouselHandler(carouselRepo repositories.CarouselRepository, rnd *render.Render) *CarouselHandler {
	return &CarouselHandler{
		carouselRepo: carouselRepo,
		render:       rnd,
	}
}

func (h *CarouselHandler) ListCarousels(w http.ResponseWriter, r *http.Request) {
	carousels, err := h.carouselRepo.FindActive(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, carousels)
}
