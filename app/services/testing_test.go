package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqldb,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	return sqldb, gormdb, mock
}

type fakeProductRepo struct {
	products map[string]*models.Product
}

func newFakeProductRepo(products ...*models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[string]*models.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, s string) (*models.Product, error) {
	for _, p := range r.products {
		if p.Slug == s {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Find(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) DeleteCascade(ctx context.Context, db *gorm.DB, productID string) error {
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) FindLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	return nil, nil
}

type fakeCartRepo struct {
	carts       map[string]*models.Cart
	createErr   error
	totalsCalls int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*models.Cart{}}
}

func (r *fakeCartRepo) Create(ctx context.Context, cart *models.Cart) error {
	if r.createErr != nil {
		return r.createErr
	}
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.ID] = cart
	return nil
}

func (r *fakeCartRepo) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	return r.carts[id], nil
}

func (r *fakeCartRepo) GetByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	for _, c := range r.carts {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	return r.carts[cartID], nil
}

func (r *fakeCartRepo) UpdateTotals(ctx context.Context, db *gorm.DB, cartID string, totals models.CartTotals) error {
	r.totalsCalls++
	cart, ok := r.carts[cartID]
	if !ok {
		return errors.New("cart not found")
	}
	cart.TotalItem = totals.TotalItem
	cart.TotalPrice = totals.TotalPrice
	cart.TotalDiscountedPrice = totals.TotalDiscountedPrice
	cart.Discount = totals.Discount
	return nil
}

func (r *fakeCartRepo) GetCartItemCount(ctx context.Context, cartID string) (int, error) {
	if cart, ok := r.carts[cartID]; ok {
		return cart.TotalItem, nil
	}
	return 0, nil
}

// fakeCartItemRepo keeps lines in a slice and mirrors them onto the cart
// held by cartRepo so GetCartWithItems sees them.
type fakeCartItemRepo struct {
	cartRepo *fakeCartRepo
	items    []*models.CartItem
}

func newFakeCartItemRepo(cartRepo *fakeCartRepo) *fakeCartItemRepo {
	return &fakeCartItemRepo{cartRepo: cartRepo}
}

func (r *fakeCartItemRepo) sync(cartID string) {
	cart, ok := r.cartRepo.carts[cartID]
	if !ok {
		return
	}
	cart.CartItems = nil
	for _, item := range r.items {
		if item.CartID == cartID {
			cart.CartItems = append(cart.CartItems, *item)
		}
	}
}

func (r *fakeCartItemRepo) Add(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items = append(r.items, item)
	r.sync(item.CartID)
	return nil
}

func (r *fakeCartItemRepo) Update(ctx context.Context, item *models.CartItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
		}
	}
	r.sync(item.CartID)
	return nil
}

func (r *fakeCartItemRepo) Delete(ctx context.Context, cartID, productID, size, color string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID && item.Size == size && item.Color == color {
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	r.sync(cartID)
	return nil
}

func (r *fakeCartItemRepo) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range r.items {
		if item.CartID == cartID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeCartItemRepo) FindVariant(ctx context.Context, cartID, productID, size, color string) (*models.CartItem, error) {
	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID && item.Size == size && item.Color == color {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeCartItemRepo) ClearCartItems(ctx context.Context, db *gorm.DB, cartID string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	r.sync(cartID)
	return nil
}

func (r *fakeCartItemRepo) DeleteByProductID(ctx context.Context, db *gorm.DB, productID string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakeOrderRepo struct {
	orders    map[string]*models.Order
	createErr error
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[string]*models.Order{}}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) Create(ctx context.Context, db *gorm.DB, order *models.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetByIDWithRelations(ctx context.Context, id string) (*models.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, db *gorm.DB, orderID, status string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	order.OrderStatus = status
	return nil
}

func (r *fakeOrderRepo) SetDeliveredAt(ctx context.Context, orderID string, at time.Time) error {
	order, ok := r.orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	order.OrderStatus = models.OrderStatusDelivered
	order.DeliveredAt = &at
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error {
	delete(r.orders, orderID)
	return nil
}

type fakeOrderItemRepo struct {
	items     []models.OrderItem
	createErr error
}

func (r *fakeOrderItemRepo) BulkCreate(ctx context.Context, db *gorm.DB, items []models.OrderItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items = append(r.items, items...)
	return nil
}

type fakeAddressRepo struct {
	addresses map[string]*models.Address
}

func newFakeAddressRepo(addresses ...*models.Address) *fakeAddressRepo {
	repo := &fakeAddressRepo{addresses: map[string]*models.Address{}}
	for _, a := range addresses {
		repo.addresses[a.ID] = a
	}
	return repo
}

func (r *fakeAddressRepo) Create(ctx context.Context, address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	r.addresses[address.ID] = address
	return nil
}

func (r *fakeAddressRepo) FindByID(ctx context.Context, id string) (*models.Address, error) {
	return r.addresses[id], nil
}

func (r *fakeAddressRepo) FindByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	var out []models.Address
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments  map[string]*models.Payment
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (r *fakePaymentRepo) Create(ctx context.Context, db *gorm.DB, payment *models.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.payments[payment.OrderID]; exists {
		return errors.New("Error 1062: Duplicate entry")
	}
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	r.payments[payment.OrderID] = payment
	return nil
}

func (r *fakePaymentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return r.payments[orderID], nil
}

// fakeGateway scripts gateway responses per id.
type fakeGateway struct {
	createOrderCalls int
	createdOrder     *GatewayOrder
	createErr        error
	payments         map[string]*GatewayPayment
	orders           map[string]*GatewayOrder
	paymentErr       error
	orderErr         error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		payments: map[string]*GatewayPayment{},
		orders:   map[string]*GatewayOrder{},
	}
}

func (g *fakeGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error) {
	g.createOrderCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	if g.createdOrder != nil {
		return g.createdOrder, nil
	}
	return &GatewayOrder{ID: "order_gw_1", Amount: amountMinor, Currency: currency, Receipt: receipt}, nil
}

func (g *fakeGateway) FetchPayment(paymentID string) (*GatewayPayment, error) {
	if g.paymentErr != nil {
		return nil, g.paymentErr
	}
	if p, ok := g.payments[paymentID]; ok {
		return p, nil
	}
	return nil, errors.New("payment not found")
}

func (g *fakeGateway) FetchOrder(orderID string) (*GatewayOrder, error) {
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	if o, ok := g.orders[orderID]; ok {
		return o, nil
	}
	return nil, errors.New("order not found")
}
