package orderdto

import (
	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	StoreID       string
	Items         []OrderLineInput
	Shipping      domain.ShippingAddress
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod string
	ShippingFee   decimal.Decimal
}

type OrderLineInput struct {
	ProductID string
	Quantity  int
}
