package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestCartGetByUserIDNotFoundReturnsNil(t *testing.T) {
	sqldb, gormdb, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery("SELECT (.+) FROM `carts` WHERE user_id = .+").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	repo := NewCartRepository(gormdb)
	cart, err := repo.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, cart, "a missing cart is not an error")
}

func TestCartGetByUserIDFound(t *testing.T) {
	sqldb, gormdb, mock := dbMock(t)
	defer sqldb.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "total_item", "total_price", "total_discounted_price", "discount"}).
		AddRow("cart-1", "user-1", 2, "1000.00", "800.00", "200.00")
	mock.ExpectQuery("SELECT (.+) FROM `carts` WHERE user_id = .+").
		WillReturnRows(rows)

	repo := NewCartRepository(gormdb)
	cart, err := repo.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, "cart-1", cart.ID)
	assert.Equal(t, 2, cart.TotalItem)
	assert.True(t, cart.TotalPrice.Equal(decimal.NewFromInt(1000)))
}

func TestCartUpdateTotalsWritesAllAggregates(t *testing.T) {
	sqldb, gormdb, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `carts` SET .+ WHERE id = .+").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewCartRepository(gormdb)
	err := repo.UpdateTotals(context.Background(), nil, "cart-1", models.CartTotals{
		TotalItem:            2,
		TotalPrice:           decimal.NewFromInt(1000),
		TotalDiscountedPrice: decimal.NewFromInt(800),
		Discount:             decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindVariantNotFoundReturnsNil(t *testing.T) {
	sqldb, gormdb, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectQuery("SELECT (.+) FROM `cart_items` WHERE cart_id = .+").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewCartItemRepository(gormdb)
	item, err := repo.FindVariant(context.Background(), "cart-1", "p1", "M", "Black")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCartItemDeleteScopedToVariant(t *testing.T) {
	sqldb, gormdb, mock := dbMock(t)
	defer sqldb.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cart_items` WHERE cart_id = .+ AND product_id = .+ AND size = .+ AND color = .+").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewCartItemRepository(gormdb)
	err := repo.Delete(context.Background(), "cart-1", "p1", "M", "Black")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
