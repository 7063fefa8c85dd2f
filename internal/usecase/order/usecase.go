package order

import (
	"fmt"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	publisher "github.com/andromedanny/storefront-service/internal/infrastructure/kafka"
	"github.com/andromedanny/storefront-service/internal/infrastructure/metrics"
	orderdto "github.com/andromedanny/storefront-service/internal/usecase/dto/order"
	"github.com/jaevor/go-nanoid"
	"github.com/rs/zerolog"
)

type Usecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*domain.Order, error)
	CancelOrder(orderID, ownerID string) error
	UpdateStatus(orderID, ownerID string, status domain.OrderStatus) (*domain.Order, error)
	GetOrder(orderID, ownerID string) (*domain.Order, error)
	GetStoreOrders(storeID, ownerID string, page, limit int) ([]*domain.Order, int64, error)
}

// order numbers skip ambiguous characters so support can read one back
// over the phone
const orderNumberAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	ProductRepo  domain.ProductRepository
	StoreRepo    domain.StoreRepository
	Publisher    *publisher.DefaultKafkaPublisher
	Metrics      *metrics.StorefrontMetrics
	OrderTopic   string
	PaymentDelay time.Duration
	Logger       *zerolog.Logger

	newOrderNumber func() string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	storeRepo domain.StoreRepository,
	pub *publisher.DefaultKafkaPublisher,
	storefrontMetrics *metrics.StorefrontMetrics,
	orderTopic string,
	paymentDelay time.Duration,
	logger *zerolog.Logger) (*DefaultOrderUsecase, error) {

	gen, err := nanoid.CustomASCII(orderNumberAlphabet, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to init order number generator: %w", err)
	}

	return &DefaultOrderUsecase{
		OrderRepo:      orderRepo,
		ProductRepo:    productRepo,
		StoreRepo:      storeRepo,
		Publisher:      pub,
		Metrics:        storefrontMetrics,
		OrderTopic:     orderTopic,
		PaymentDelay:   paymentDelay,
		Logger:         logger,
		newOrderNumber: func() string { return "ORD-" + gen() },
	}, nil
}

func (uc *DefaultOrderUsecase) publishEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(uc.OrderTopic, event); err != nil {
			uc.Logger.Error().Err(err).Str("order_id", event.OrderID).Msg("failed to publish order event")
		}
	}(publisher.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		StoreID:     order.StoreID,
		Status:      string(order.Status),
		Total:       order.Total.StringFixed(2),
		ItemCount:   len(order.Items),
	})
}
