package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

// AdminOrderHandler exposes the order lifecycle transitions to back
// office staff. All routes are mounted behind the admin middleware.
type AdminOrderHandler struct {
	orderService *services.OrderService
	render       *render.Render
}

func NewAdminOrderHandler(orderService *services.OrderService, rnd *render.Render) *AdminOrderHandler {
	return &AdminOrderHandler{
		orderService: orderService,
		render:       rnd,
	}
}

func (h *AdminOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.AllOrders(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *AdminOrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.PlacedOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *AdminOrderHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.ShippedOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *AdminOrderHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.DeliveredOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *AdminOrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.CancelOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *AdminOrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.DeleteOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}
