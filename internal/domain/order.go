package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodGCash  PaymentMethod = "gcash"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCard   PaymentMethod = "card"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type Order struct {
	ID            string
	StoreID       string
	OrderNumber   string
	Status        OrderStatus
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Subtotal      decimal.Decimal
	ShippingFee   decimal.Decimal
	Total         decimal.Decimal
	Shipping      ShippingAddress
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type ShippingAddress struct {
	Line1        string `json:"line1"`
	Barangay     string `json:"barangay"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
}

// CanTransitionTo enforces the order status machine. Cancellation is only
// reachable before shipment.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	switch o.Status {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusCompleted
	default:
		return false
	}
}

type OrderRepository interface {
	// CreateOrderWithStock persists the order and its items and decrements
	// stock per line in one transaction. The decrement is conditional on
	// stock >= quantity; a failed condition surfaces as ErrInsufficientStock
	// and nothing is written.
	CreateOrderWithStock(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrdersByStoreID(storeID string, page, limit int) ([]*Order, int64, error)
	UpdateOrderStatus(orderID string, status OrderStatus) error
	UpdatePaymentStatus(orderID string, status PaymentStatus) error
	// CompletePaymentIfPending marks the payment completed and advances the
	// order to processing in one conditional write. Returns false when the
	// order is no longer pending, so a cancellation that raced the payment
	// callback stays cancelled.
	CompletePaymentIfPending(orderID string) (bool, error)
	// CancelOrderWithStock flips the order to cancelled and restores stock
	// for every line item in one transaction.
	CancelOrderWithStock(orderID string) error
}
