package productdto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	StoreID     string
	OwnerID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Image       string
}

// UpdateProductInput carries partial updates: nil or zero-valued fields
// leave the stored value alone.
type UpdateProductInput struct {
	ProductID   string
	OwnerID     string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       *int
	Image       string
	IsActive    *bool
}
