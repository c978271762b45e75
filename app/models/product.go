package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Slug            string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description     string          `gorm:"type:text" json:"description"`
	Brand           string          `gorm:"size:100" json:"brand"`
	Price           decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	DiscountedPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"discountedPrice"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"discountPercent"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	ImageURL        string          `gorm:"type:text" json:"imageUrl"`
	CategoryID      string          `gorm:"size:36;index" json:"categoryId"`
	Category        *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Sizes           []ProductSize   `gorm:"foreignKey:ProductID" json:"sizes"`
	Colors          []ProductColor  `gorm:"foreignKey:ProductID" json:"colors"`
	Ratings         []Rating        `gorm:"foreignKey:ProductID" json:"-"`
	Reviews         []Review        `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// ProductSize carries per-size stock.
type ProductSize struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;not null;index" json:"-"`
	Name      string `gorm:"size:50;not null" json:"name"`
	Quantity  int    `gorm:"not null;default:0" json:"quantity"`
}

func (s *ProductSize) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

type ProductColor struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string         `gorm:"size:36;not null;index" json:"-"`
	Name      string         `gorm:"size:50;not null" json:"name"`
	Photos    []ProductPhoto `gorm:"foreignKey:ColorID" json:"photos"`
}

func (c *ProductColor) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

type ProductPhoto struct {
	ID      string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ColorID string `gorm:"size:36;not null;index" json:"-"`
	URL     string `gorm:"type:text;not null" json:"url"`
}

func (p *ProductPhoto) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
