package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(products ...*models.Product) (*CartService, *fakeCartRepo, *fakeCartItemRepo) {
	cartRepo := newFakeCartRepo()
	cartItemRepo := newFakeCartItemRepo(cartRepo)
	productRepo := newFakeProductRepo(products...)
	return NewCartService(cartRepo, cartItemRepo, productRepo), cartRepo, cartItemRepo
}

func testProduct(id string, price, discounted int64) *models.Product {
	return &models.Product{
		ID:              id,
		Title:           "Product " + id,
		Price:           decimal.NewFromInt(price),
		DiscountedPrice: decimal.NewFromInt(discounted),
		Quantity:        50,
	}
}

func TestAddItemCreatesLineWithSnapshot(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 500, 400))

	cart, err := svc.AddItem(context.Background(), "user-1", "p1", "M", "Black", 2)
	require.NoError(t, err)

	require.Len(t, itemRepo.items, 1)
	item := itemRepo.items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(500)))
	assert.True(t, item.DiscountedPrice.Equal(decimal.NewFromInt(400)))

	assert.Equal(t, 2, cart.TotalItem)
	assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, cart.TotalDiscountedPrice.Equal(decimal.NewFromInt(800)))
	assert.True(t, cart.Discount.Equal(decimal.NewFromInt(200)))
}

func TestAddItemMergesSameVariant(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 500, 400))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 3)
	require.NoError(t, err)

	require.Len(t, itemRepo.items, 1, "same variant must merge, not duplicate")
	assert.Equal(t, 5, itemRepo.items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItem)
	assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(2500)))
}

func TestAddItemDifferentVariantIsSeparateLine(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 500, 400))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user-1", "p1", "L", "Black", 1)
	require.NoError(t, err)

	assert.Len(t, itemRepo.items, 2)
}

func TestAddItemDefaultsVariantSentinels(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 100, 100))

	_, err := svc.AddItem(context.Background(), "user-1", "p1", "", "", 1)
	require.NoError(t, err)

	require.Len(t, itemRepo.items, 1)
	assert.Equal(t, models.VariantDefault, itemRepo.items[0].Size)
	assert.Equal(t, models.VariantDefault, itemRepo.items[0].Color)
}

func TestAddItemMergeRefreshesPriceSnapshot(t *testing.T) {
	product := testProduct("p1", 500, 400)
	svc, _, itemRepo := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 1)
	require.NoError(t, err)

	// Catalogue price changes between the two adds.
	product.Price = decimal.NewFromInt(600)
	product.DiscountedPrice = decimal.NewFromInt(450)

	cart, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 1)
	require.NoError(t, err)

	assert.True(t, itemRepo.items[0].Price.Equal(decimal.NewFromInt(600)))
	assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(1200)))
	assert.True(t, cart.TotalDiscountedPrice.Equal(decimal.NewFromInt(900)))
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc, _, _ := newCartFixture(testProduct("p1", 100, 100))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "", "", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, "user-1", "p1", "", "", -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, "user-1", "missing", "", "", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetOrCreateCartResolvesInsertRace(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartItemRepo := newFakeCartItemRepo(cartRepo)
	svc := NewCartService(cartRepo, cartItemRepo, newFakeProductRepo())

	// A concurrent winner inserted between the miss and our insert.
	winner := &models.Cart{ID: "cart-winner", UserID: "user-1"}
	cartRepo.createErr = errors.New("Error 1062: Duplicate entry")
	cartRepo.carts[winner.ID] = winner

	cart, err := svc.GetOrCreateCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-winner", cart.ID)
}

func TestUpdateItemQuantitySetsAbsoluteValue(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 100, 90))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 5)
	require.NoError(t, err)

	cart, err := svc.UpdateItemQuantity(ctx, "user-1", "p1", "M", "Black", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, itemRepo.items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItem)
	assert.True(t, cart.TotalDiscountedPrice.Equal(decimal.NewFromInt(180)))
}

func TestUpdateItemQuantityZeroRemovesLine(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 100, 90))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 5)
	require.NoError(t, err)

	cart, err := svc.UpdateItemQuantity(ctx, "user-1", "p1", "M", "Black", 0)
	require.NoError(t, err)

	assert.Empty(t, itemRepo.items)
	assert.Equal(t, 0, cart.TotalItem)
	assert.True(t, cart.TotalPrice.IsZero())
	assert.True(t, cart.Discount.IsZero())
}

func TestUpdateItemQuantityMissingLine(t *testing.T) {
	svc, _, _ := newCartFixture(testProduct("p1", 100, 90))

	_, err := svc.UpdateItemQuantity(context.Background(), "user-1", "p1", "M", "Black", 2)
	assert.ErrorIs(t, err, ErrCartItemMissing)
}

func TestRemoveItemRecomputesTotalsFromSurvivors(t *testing.T) {
	svc, _, _ := newCartFixture(testProduct("p1", 100, 90), testProduct("p2", 200, 200))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "M", "Black", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user-1", "p2", "", "", 3)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "user-1", "p1", "M", "Black")
	require.NoError(t, err)

	assert.Equal(t, 3, cart.TotalItem)
	assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(600)))
	assert.True(t, cart.TotalDiscountedPrice.Equal(decimal.NewFromInt(600)))
	assert.True(t, cart.Discount.IsZero())
}

func TestClearCartEmptiesEverything(t *testing.T) {
	svc, _, itemRepo := newCartFixture(testProduct("p1", 100, 90))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "", "", 4)
	require.NoError(t, err)

	cart, err := svc.ClearCart(ctx, "user-1")
	require.NoError(t, err)

	assert.Empty(t, itemRepo.items)
	assert.Equal(t, 0, cart.TotalItem)
	assert.True(t, cart.TotalPrice.IsZero())
}

func TestGetCartReadRepairsStaleTotals(t *testing.T) {
	svc, cartRepo, _ := newCartFixture(testProduct("p1", 100, 90))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", "p1", "", "", 2)
	require.NoError(t, err)

	// Corrupt the stored aggregates behind the service's back.
	stored, err := cartRepo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	stored.TotalItem = 99
	stored.TotalPrice = decimal.NewFromInt(12345)

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, cart.TotalItem)
	assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(200)))
	assert.True(t, cart.TotalDiscountedPrice.Equal(decimal.NewFromInt(180)))
}
