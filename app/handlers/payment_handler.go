package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/middlewares"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	orderService   *services.OrderService
	render         *render.Render
}

func NewPaymentHandler(paymentService *services.PaymentService, orderService *services.OrderService, rnd *render.Render) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		orderService:   orderService,
		render:         rnd,
	}
}

// CreatePaymentOrder registers the order with the payment gateway and
// returns the gateway order id, the amount in minor units and the public
// key the client passes to the checkout widget.
func (h *PaymentHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r.Context())
	role := middlewares.CurrentRole(r.Context())
	orderID := mux.Vars(r)["orderId"]

	order, err := h.orderService.FindOrderByID(r.Context(), orderID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}
	if order.UserID != userID && role != models.RoleAdmin {
		respondError(h.render, w, services.ErrOrderNotFound)
		return
	}

	paymentOrder, err := h.paymentService.CreatePaymentOrder(r.Context(), orderID)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, paymentOrder)
}

// VerifyPayment completes the checkout. The client supplies the gateway
// payment id, the local order id and the gateway order id it was handed at
// checkout time; the payment is fetched back from the gateway and only a
// captured payment attached to the matching gateway order moves the order
// forward.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := r.URL.Query().Get("payment_id")
	orderID := r.URL.Query().Get("order_id")
	gatewayOrderID := r.URL.Query().Get("razorpay_order_id")

	if paymentID == "" || orderID == "" || gatewayOrderID == "" {
		respondValidation(h.render, w, "payment_id, order_id and razorpay_order_id are required")
		return
	}

	if err := h.paymentService.UpdatePaymentInformation(r.Context(), paymentID, orderID, gatewayOrderID); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "payment verified, order placed",
	})
}
