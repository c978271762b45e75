package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/middlewares"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderService *services.OrderService
	render       *render.Render
	validate     *validator.Validate
}

func NewOrderHandler(orderService *services.OrderService, rnd *render.Render, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		render:       rnd,
		validate:     validate,
	}
}

// CreateOrderRequest accepts either an existing address by id or a full
// inline address to be saved for the user.
type CreateOrderRequest struct {
	AddressID string `json:"addressId"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	PostCode  string `json:"postCode"`
	Phone     string `json:"phone"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if req.AddressID == "" && (req.Street == "" || req.City == "" || req.PostCode == "") {
		respondValidation(h.render, w, "either addressId or a full shipping address is required")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	address := &models.Address{
		ID:       req.AddressID,
		Name:     req.Name,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		PostCode: req.PostCode,
		Phone:    req.Phone,
	}

	order, err := h.orderService.CreateOrder(r.Context(), userID, address)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())
	role := middlewares.CurrentRole(r.Context())
	orderID := mux.Vars(r)["id"]

	order, err := h.orderService.FindOrderByID(r.Context(), orderID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	// Non-admins can only see their own orders.
	if order.UserID != userID && role != models.RoleAdmin {
		respondError(h.render, w, services.ErrOrderNotFound)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())

	orders, err := h.orderService.UsersOrderHistory(r.Context(), userID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())
	role := middlewares.CurrentRole(r.Context())
	orderID := mux.Vars(r)["id"]

	order, err := h.orderService.FindOrderByID(r.Context(), orderID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if order.UserID != userID && role != models.RoleAdmin {
		respondError(h.render, w, services.ErrOrderNotFound)
		return
	}

	cancelled, err := h.orderService.CancelOrder(r.Context(), orderID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, cancelled)
}
