package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productService *services.ProductService
	render         *render.Render
}

func NewProductHandler(productService *services.ProductService, rnd *render.Render) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		render:         rnd,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	filter := repositories.ProductFilter{
		CategoryID: q.Get("category_id"),
		Search:     q.Get("q"),
		Page:       page,
		PageSize:   pageSize,
	}

	products, total, err := h.productService.FindProducts(r.Context(), filter)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"total":      total,
		"page":       page,
		"totalPages": int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}
