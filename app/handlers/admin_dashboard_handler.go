package handlers

import (
	"net/http"

	"github.com/leekchan/accounting"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type AdminDashboardHandler struct {
	orderService *services.OrderService
	productRepo  repositories.ProductRepositoryImpl
	render       *render.Render
	lowStock     int
}

func NewAdminDashboardHandler(orderService *services.OrderService, productRepo repositories.ProductRepositoryImpl, rnd *render.Render, lowStockThreshold int) *AdminDashboardHandler {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 5
	}
	return &AdminDashboardHandler{
		orderService: orderService,
		productRepo:  productRepo,
		render:       rnd,
		lowStock:     lowStockThreshold,
	}
}

// Dashboard summarises the shop for the back office landing page: order
// counts per status, revenue over paid orders and products running low
// on stock.
func (h *AdminDashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.AllOrders(r.Context())
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	lowStock, err := h.productRepo.FindLowStock(r.Context(), h.lowStock)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	statusCounts := map[string]int{}
	revenue := decimal.Zero
	for _, order := range orders {
		statusCounts[order.OrderStatus]++
		switch order.OrderStatus {
		case models.OrderStatusPlaced, models.OrderStatusShipped, models.OrderStatusDelivered:
			revenue = revenue.Add(order.TotalDiscountedPrice)
		}
	}

	ac := accounting.Accounting{Symbol: "₹", Precision: 2}

	recent := orders
	if len(recent) > 10 {
		recent = recent[:10]
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"totalOrders":      len(orders),
		"ordersByStatus":   statusCounts,
		"revenue":          revenue,
		"revenueFormatted": ac.FormatMoney(revenue.InexactFloat64()),
		"lowStockProducts": lowStock,
		"recentOrders":     recent,
	})
}
