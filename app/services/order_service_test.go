package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

type orderFixture struct {
	svc           *OrderService
	cartRepo      *fakeCartRepo
	orderRepo     *fakeOrderRepo
	orderItemRepo *fakeOrderItemRepo
	addressRepo   *fakeAddressRepo
}

func newOrderFixture(t *testing.T) (*orderFixture, sqlmock.Sqlmock) {
	_, gormdb, mock := dbMock(t)

	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo()
	orderItemRepo := &fakeOrderItemRepo{}
	addressRepo := newFakeAddressRepo()

	svc := NewOrderService(gormdb, cartRepo, orderRepo, orderItemRepo, addressRepo)
	return &orderFixture{
		svc:           svc,
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		addressRepo:   addressRepo,
	}, mock
}

func (f *orderFixture) seedCart(userID string) *models.Cart {
	cart := &models.Cart{
		ID:     "cart-1",
		UserID: userID,
		CartItems: []models.CartItem{
			{
				CartID:          "cart-1",
				ProductID:       "p1",
				Product:         &models.Product{ID: "p1", Title: "Cotton Tee"},
				Size:            "M",
				Color:           "Black",
				Quantity:        2,
				Price:           decimal.NewFromInt(500),
				DiscountedPrice: decimal.NewFromInt(400),
			},
		},
		TotalItem:            2,
		TotalPrice:           decimal.NewFromInt(1000),
		TotalDiscountedPrice: decimal.NewFromInt(800),
		Discount:             decimal.NewFromInt(200),
	}
	f.cartRepo.carts[cart.ID] = cart
	return cart
}

func TestCreateOrderSnapshotsCart(t *testing.T) {
	f, mock := newOrderFixture(t)
	f.seedCart("user-1")

	mock.ExpectBegin()
	mock.ExpectCommit()

	order, err := f.svc.CreateOrder(context.Background(), "user-1", &models.Address{
		Name:     "Asha",
		Street:   "12 MG Road",
		City:     "Pune",
		State:    "MH",
		PostCode: "411001",
		Phone:    "9999999999",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, 2, order.TotalItem)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, order.TotalDiscountedPrice.Equal(decimal.NewFromInt(800)))
	assert.True(t, order.Discount.Equal(decimal.NewFromInt(200)))
	assert.NotEmpty(t, order.OrderCode)

	require.Len(t, f.orderItemRepo.items, 1)
	item := f.orderItemRepo.items[0]
	assert.Equal(t, order.ID, item.OrderID)
	assert.Equal(t, "Cotton Tee", item.ProductTitle)
	assert.Equal(t, "M", item.Size)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(500)))
}

func TestCreateOrderLeavesCartIntact(t *testing.T) {
	f, mock := newOrderFixture(t)
	cart := f.seedCart("user-1")

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := f.svc.CreateOrder(context.Background(), "user-1", &models.Address{
		Street: "12 MG Road", City: "Pune", PostCode: "411001",
	})
	require.NoError(t, err)

	assert.Len(t, cart.CartItems, 1, "checkout must not clear the cart")
	assert.Equal(t, 2, cart.TotalItem)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f, _ := newOrderFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), "user-1", &models.Address{Street: "x"})
	assert.ErrorIs(t, err, ErrCartEmpty)

	// A cart row with no items is still empty.
	f.cartRepo.carts["cart-1"] = &models.Cart{ID: "cart-1", UserID: "user-1"}
	_, err = f.svc.CreateOrder(context.Background(), "user-1", &models.Address{Street: "x"})
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateOrderReusesOwnAddressOnly(t *testing.T) {
	f, mock := newOrderFixture(t)
	f.seedCart("user-1")
	f.addressRepo.addresses["addr-other"] = &models.Address{ID: "addr-other", UserID: "user-2"}
	f.addressRepo.addresses["addr-mine"] = &models.Address{ID: "addr-mine", UserID: "user-1"}

	_, err := f.svc.CreateOrder(context.Background(), "user-1", &models.Address{ID: "addr-other"})
	assert.ErrorIs(t, err, ErrAddressNotFound)

	mock.ExpectBegin()
	mock.ExpectCommit()
	order, err := f.svc.CreateOrder(context.Background(), "user-1", &models.Address{ID: "addr-mine"})
	require.NoError(t, err)
	assert.Equal(t, "addr-mine", order.AddressID)
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	f, mock := newOrderFixture(t)
	f.seedCart("user-1")
	f.orderItemRepo.createErr = errors.New("insert failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := f.svc.CreateOrder(context.Background(), "user-1", &models.Address{Street: "x", City: "y", PostCode: "1"})
	require.Error(t, err)
}

func TestPlacedOrderIsIdempotent(t *testing.T) {
	f, _ := newOrderFixture(t)
	f.orderRepo.orders["o1"] = &models.Order{ID: "o1", OrderStatus: models.OrderStatusPending}

	order, err := f.svc.PlacedOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, order.OrderStatus)

	// Second confirmation is a no-op, not an error.
	order, err = f.svc.PlacedOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, order.OrderStatus)
}

func TestOrderTransitionsRejectSkips(t *testing.T) {
	f, _ := newOrderFixture(t)
	f.orderRepo.orders["o1"] = &models.Order{ID: "o1", OrderStatus: models.OrderStatusPending}

	_, err := f.svc.ShippedOrder(context.Background(), "o1")
	assert.ErrorIs(t, err, ErrOrderTransition)

	_, err = f.svc.DeliveredOrder(context.Background(), "o1")
	assert.ErrorIs(t, err, ErrOrderTransition)
}

func TestDeliveredOrderStampsTime(t *testing.T) {
	f, _ := newOrderFixture(t)
	f.orderRepo.orders["o1"] = &models.Order{ID: "o1", OrderStatus: models.OrderStatusShipped}

	order, err := f.svc.DeliveredOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.OrderStatus)
	assert.NotNil(t, order.DeliveredAt)
}

func TestCancelOrderRules(t *testing.T) {
	f, _ := newOrderFixture(t)
	f.orderRepo.orders["o1"] = &models.Order{ID: "o1", OrderStatus: models.OrderStatusPlaced}
	f.orderRepo.orders["o2"] = &models.Order{ID: "o2", OrderStatus: models.OrderStatusDelivered}

	order, err := f.svc.CancelOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.OrderStatus)

	// Cancelling again is a no-op.
	_, err = f.svc.CancelOrder(context.Background(), "o1")
	require.NoError(t, err)

	_, err = f.svc.CancelOrder(context.Background(), "o2")
	assert.ErrorIs(t, err, ErrOrderTransition)
}

func TestFindOrderByIDMissing(t *testing.T) {
	f, _ := newOrderFixture(t)

	_, err := f.svc.FindOrderByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
