package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/middlewares"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartService *services.CartService
	render      *render.Render
	validate    *validator.Validate
}

func NewCartHandler(cartService *services.CartService, rnd *render.Render, validate *validator.Validate) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		render:      rnd,
		validate:    validate,
	}
}

type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CartItemUpdateRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	cart, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	var req CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), userID, req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	var req CartItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(r.Context(), userID, req.ProductID, req.Size, req.Color, req.Quantity)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		respondValidation(h.render, w, "product_id is required")
		return
	}
	size := r.URL.Query().Get("size")
	color := r.URL.Query().Get("color")

	cart, err := h.cartService.RemoveItem(r.Context(), userID, productID, size, color)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	cart, err := h.cartService.ClearCart(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cart)
}
