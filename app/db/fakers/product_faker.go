package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var sampleSizes = []string{"S", "M", "L", "XL"}

var sampleColors = []string{"Black", "White", "Navy", "Olive"}

func ProductFaker(db *gorm.DB, category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	price := decimal.NewFromInt(int64(rand.Intn(4500) + 500))
	discountPercent := decimal.NewFromInt(int64(rand.Intn(40)))
	discounted := price.Sub(price.Mul(discountPercent).Div(decimal.NewFromInt(100))).Round(2)

	sizes := make([]models.ProductSize, 0, len(sampleSizes))
	for _, s := range sampleSizes {
		sizes = append(sizes, models.ProductSize{
			ID:        uuid.New().String(),
			ProductID: productID,
			Name:      s,
			Quantity:  rand.Intn(20) + 1,
		})
	}

	colors := make([]models.ProductColor, 0, 2)
	for _, c := range sampleColors[:2] {
		colors = append(colors, models.ProductColor{
			ID:        uuid.New().String(),
			ProductID: productID,
			Name:      c,
		})
	}

	return &models.Product{
		ID:              productID,
		Title:           name,
		Slug:            slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:     faker.Paragraph(),
		Brand:           faker.LastName(),
		Price:           price,
		DiscountedPrice: discounted,
		DiscountPercent: discountPercent,
		Quantity:        rand.Intn(50) + 10,
		ImageURL:        "/images/products/placeholder.jpg",
		CategoryID:      category.ID,
		Sizes:           sizes,
		Colors:          colors,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}
