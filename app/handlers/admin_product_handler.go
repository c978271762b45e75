package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type AdminProductHandler struct {
	productService *services.ProductService
	render         *render.Render
	validate       *validator.Validate
}

func NewAdminProductHandler(productService *services.ProductService, rnd *render.Render, validate *validator.Validate) *AdminProductHandler {
	return &AdminProductHandler{
		productService: productService,
		render:         rnd,
		validate:       validate,
	}
}

type ProductRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	Brand           string   `json:"brand"`
	Price           string   `json:"price" validate:"required"`
	DiscountedPrice string   `json:"discountedPrice"`
	Quantity        int      `json:"quantity" validate:"min=0"`
	ImageURL        string   `json:"imageUrl"`
	CategoryID      string   `json:"categoryId" validate:"required"`
	Sizes           []string `json:"sizes"`
	Colors          []string `json:"colors"`
}

func (req *ProductRequest) toModel() (*models.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, err
	}

	discounted := price
	if req.DiscountedPrice != "" {
		discounted, err = decimal.NewFromString(req.DiscountedPrice)
		if err != nil {
			return nil, err
		}
	}

	discountPercent := decimal.Zero
	if price.IsPositive() && discounted.LessThan(price) {
		discountPercent = price.Sub(discounted).Div(price).Mul(decimal.NewFromInt(100)).Round(2)
	}

	product := &models.Product{
		Title:           req.Title,
		Description:     req.Description,
		Brand:           req.Brand,
		Price:           price,
		DiscountedPrice: discounted,
		DiscountPercent: discountPercent,
		Quantity:        req.Quantity,
		ImageURL:        req.ImageURL,
		CategoryID:      req.CategoryID,
	}
	for _, name := range req.Sizes {
		product.Sizes = append(product.Sizes, models.ProductSize{Name: name, Quantity: req.Quantity})
	}
	for _, name := range req.Colors {
		product.Colors = append(product.Colors, models.ProductColor{Name: name})
	}
	return product, nil
}

func (h *AdminProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	product, err := req.toModel()
	if err != nil {
		respondValidation(h.render, w, "price must be a decimal number")
		return
	}

	created, err := h.productService.CreateProduct(r.Context(), product)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	product, err := req.toModel()
	if err != nil {
		respondValidation(h.render, w, "price must be a decimal number")
		return
	}
	product.ID = productID

	updated, err := h.productService.UpdateProduct(r.Context(), product)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, updated)
}

func (h *AdminProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
