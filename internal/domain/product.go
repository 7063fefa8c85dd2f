package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	StoreID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductRepository interface {
	CreateProduct(product *Product) error
	UpdateProduct(product *Product) error
	DeleteProduct(productID string) error
	GetProductByID(productID string) (*Product, error)
	GetProductsByStoreID(storeID string) ([]*Product, error)
	// GetActiveProductsByStoreID returns active products newest first,
	// the order the public storefront renders them in.
	GetActiveProductsByStoreID(storeID string) ([]*Product, error)
}
