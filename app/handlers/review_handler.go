package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/middlewares"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
	render        *render.Render
	validate      *validator.Validate
}

func NewReviewHandler(reviewService *services.ReviewService, rnd *render.Render, validate *validator.Validate) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		render:        rnd,
		validate:      validate,
	}
}

type ReviewRequest struct {
	Body string `json:"body" validate:"required"`
}

type RatingRequest struct {
	Value float64 `json:"value" validate:"min=0,max=5"`
}

func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())
	productID := mux.Vars(r)["productId"]

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	review, err := h.reviewService.SubmitReview(r.Context(), userID, productID, req.Body)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	reviews, err := h.reviewService.ProductReviews(r.Context(), productID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())
	productID := mux.Vars(r)["productId"]

	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	rating, err := h.reviewService.SubmitRating(r.Context(), userID, productID, req.Value)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, rating)
}

func (h *ReviewHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	ratings, average, err := h.reviewService.ProductRatings(r.Context(), productID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"ratings": ratings,
		"average": average,
	})
}
