package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	orderdto "github.com/andromedanny/storefront-service/internal/usecase/dto/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrder is the public order intake. The store must be published and
// every line must name an active product of that store with enough stock.
// The stock check here produces the friendly rejection naming the product
// and the quantity left; the repository's conditional decrement is the
// race guard that makes the check binding under concurrency.
func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		uc.Metrics.OrderErrorsTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("order must have at least one item: %w", domain.ErrValidation)
	}
	if input.CustomerName == "" {
		uc.Metrics.OrderErrorsTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("customer name is required: %w", domain.ErrValidation)
	}

	paymentMethod, err := parsePaymentMethod(input.PaymentMethod)
	if err != nil {
		uc.Metrics.OrderErrorsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}
	if input.ShippingFee.IsNegative() {
		uc.Metrics.OrderErrorsTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("shipping fee must not be negative: %w", domain.ErrValidation)
	}

	store, err := uc.StoreRepo.GetStoreByID(input.StoreID)
	if err != nil {
		uc.Metrics.OrderErrorsTotal.WithLabelValues("store_not_found").Inc()
		return nil, err
	}
	if !store.IsPublished() {
		// draft stores do not take orders and do not reveal themselves
		uc.Metrics.OrderErrorsTotal.WithLabelValues("store_not_found").Inc()
		return nil, domain.ErrStoreNotFound
	}

	orderID := uuid.New().String()
	subtotal := decimal.Zero
	items := make([]*domain.OrderItem, 0, len(input.Items))

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			uc.Metrics.OrderErrorsTotal.WithLabelValues("validation").Inc()
			return nil, fmt.Errorf("quantity must be positive for product %s: %w", line.ProductID, domain.ErrValidation)
		}

		product, err := uc.ProductRepo.GetProductByID(line.ProductID)
		if err != nil {
			uc.Metrics.OrderErrorsTotal.WithLabelValues("product_not_found").Inc()
			return nil, fmt.Errorf("product %s: %w", line.ProductID, domain.ErrProductNotFound)
		}
		if product.StoreID != store.ID || !product.IsActive {
			uc.Metrics.OrderErrorsTotal.WithLabelValues("product_not_found").Inc()
			return nil, fmt.Errorf("product %q: %w", product.Name, domain.ErrProductNotFound)
		}
		if product.Stock < line.Quantity {
			uc.Metrics.OrderErrorsTotal.WithLabelValues("insufficient_stock").Inc()
			return nil, fmt.Errorf("product %q has only %d in stock: %w", product.Name, product.Stock, domain.ErrInsufficientStock)
		}

		lineSubtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, &domain.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Subtotal:  lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	order := &domain.Order{
		ID:            orderID,
		StoreID:       store.ID,
		OrderNumber:   uc.newOrderNumber(),
		Status:        domain.OrderStatusPending,
		PaymentMethod: paymentMethod,
		PaymentStatus: domain.PaymentStatusPending,
		Subtotal:      subtotal,
		ShippingFee:   input.ShippingFee,
		Total:         subtotal.Add(input.ShippingFee),
		Shipping:      input.Shipping,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Items:         items,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uc.OrderRepo.CreateOrderWithStock(order); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.Metrics.OrderErrorsTotal.WithLabelValues("insufficient_stock").Inc()
			return nil, err
		}
		uc.Metrics.OrderErrorsTotal.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.Metrics.OrdersCreatedTotal.WithLabelValues(order.StoreID, string(paymentMethod)).Inc()
	uc.publishEvent(order)
	uc.simulatePayment(order.ID)

	return order, nil
}

func parsePaymentMethod(raw string) (domain.PaymentMethod, error) {
	switch domain.PaymentMethod(raw) {
	case domain.PaymentMethodGCash, domain.PaymentMethodPayPal, domain.PaymentMethodCard:
		return domain.PaymentMethod(raw), nil
	default:
		return "", fmt.Errorf("unknown payment method %q: %w", raw, domain.ErrValidation)
	}
}
