package order

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/infrastructure/metrics"
	orderdto "github.com/andromedanny/storefront-service/internal/usecase/dto/order"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promauto registers against the default registry, so one instance for the
// whole test binary.
var testMetrics = metrics.NewStorefrontMetrics()

type fakeStoreRepo struct {
	stores map[string]*domain.Store
}

func (r *fakeStoreRepo) CreateStore(store *domain.Store) error { r.stores[store.ID] = store; return nil }
func (r *fakeStoreRepo) UpdateStore(store *domain.Store) error { r.stores[store.ID] = store; return nil }
func (r *fakeStoreRepo) DeleteStore(storeID string) error      { delete(r.stores, storeID); return nil }

func (r *fakeStoreRepo) GetStoreByID(storeID string) (*domain.Store, error) {
	store, ok := r.stores[storeID]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}

func (r *fakeStoreRepo) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	var out []*domain.Store
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) GetPublishedStoreByDomain(domainName string) (*domain.Store, error) {
	for _, s := range r.stores {
		if s.DomainName == domainName && s.IsPublished() {
			return s, nil
		}
	}
	return nil, domain.ErrStoreNotFound
}

func (r *fakeStoreRepo) DomainExists(domainName string) (bool, error) {
	for _, s := range r.stores {
		if s.DomainName == domainName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStoreRepo) SaveContent(storeID string, content domain.Content) error {
	store, ok := r.stores[storeID]
	if !ok {
		return domain.ErrStoreNotFound
	}
	store.Content = content
	return nil
}

func (r *fakeStoreRepo) UpdateStatus(storeID string, status domain.StoreStatus) error {
	store, ok := r.stores[storeID]
	if !ok {
		return domain.ErrStoreNotFound
	}
	store.Status = status
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func (r *fakeProductRepo) CreateProduct(p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateProduct(p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) GetProductByID(productID string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetProductsByStoreID(storeID string) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Product
	for _, p := range r.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetActiveProductsByStoreID(storeID string) ([]*domain.Product, error) {
	all, _ := r.GetProductsByStoreID(storeID)
	var out []*domain.Product
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) stock(productID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[productID].Stock
}

// fakeOrderRepo mirrors the transactional contract: the conditional
// decrement happens inside CreateOrderWithStock, and a failed line leaves
// every product untouched.
type fakeOrderRepo struct {
	mu       sync.Mutex
	orders   map[string]*domain.Order
	products *fakeProductRepo
}

func (r *fakeOrderRepo) CreateOrderWithStock(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	for _, item := range order.Items {
		p, ok := r.products.products[item.ProductID]
		if !ok || p.Stock < item.Quantity {
			return fmt.Errorf("product %q: %w", item.Name, domain.ErrInsufficientStock)
		}
	}
	for _, item := range order.Items {
		r.products.products[item.ProductID].Stock -= item.Quantity
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrdersByStoreID(storeID string, page, limit int) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if o.StoreID == storeID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) UpdatePaymentStatus(orderID string, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.PaymentStatus = status
	return nil
}

func (r *fakeOrderRepo) CompletePaymentIfPending(orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return false, domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending {
		return false, nil
	}
	order.Status = domain.OrderStatusProcessing
	order.PaymentStatus = domain.PaymentStatusCompleted
	return true, nil
}

func (r *fakeOrderRepo) CancelOrderWithStock(orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusProcessing {
		return domain.ErrInvalidStatus
	}
	order.Status = domain.OrderStatusCancelled

	r.products.mu.Lock()
	defer r.products.mu.Unlock()
	for _, item := range order.Items {
		if p, ok := r.products.products[item.ProductID]; ok {
			p.Stock += item.Quantity
		}
	}
	return nil
}

type orderFixture struct {
	uc       *DefaultOrderUsecase
	stores   *fakeStoreRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func newOrderFixture(t *testing.T, paymentDelay time.Duration) *orderFixture {
	t.Helper()

	stores := &fakeStoreRepo{stores: map[string]*domain.Store{
		"store-1": {ID: "store-1", OwnerID: "owner-1", Name: "Benny's Blades", DomainName: "blades", Status: domain.StoreStatusPublished},
		"store-2": {ID: "store-2", OwnerID: "owner-2", Name: "Draft Shop", DomainName: "draft-shop", Status: domain.StoreStatusDraft},
	}}
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"p1": {ID: "p1", StoreID: "store-1", Name: "Chef Knife", Price: decimal.NewFromInt(1500), Stock: 5, IsActive: true},
		"p2": {ID: "p2", StoreID: "store-1", Name: "Paring Knife", Price: decimal.RequireFromString("899.50"), Stock: 2, IsActive: true},
		"p3": {ID: "p3", StoreID: "store-1", Name: "Retired Knife", Price: decimal.NewFromInt(100), Stock: 9, IsActive: false},
	}}
	orders := &fakeOrderRepo{orders: map[string]*domain.Order{}, products: products}

	nop := zerolog.Nop()
	uc, err := NewDefaultOrderUsecase(orders, products, stores, nil, testMetrics, "order-events", paymentDelay, &nop)
	require.NoError(t, err)

	return &orderFixture{uc: uc, stores: stores, products: products, orders: orders}
}

func validInput() *orderdto.CreateOrderInput {
	return &orderdto.CreateOrderInput{
		StoreID: "store-1",
		Items: []orderdto.OrderLineInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		CustomerName:  "Juan Dela Cruz",
		CustomerEmail: "juan@mail.test",
		PaymentMethod: "gcash",
		ShippingFee:   decimal.NewFromInt(120),
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("3899.50")), "subtotal %s", order.Subtotal)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("4019.50")), "total %s", order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.NewFromInt(3000)))

	// each item snapshots the unit price at purchase time
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(1500)))
}

func TestCreateOrderNumberFormat(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-[0-9A-HJKMNP-TV-Z]{10}$`, order.OrderNumber)
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	f := newOrderFixture(t, 0)

	_, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	assert.Equal(t, 3, f.products.stock("p1"))
	assert.Equal(t, 1, f.products.stock("p2"))
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture(t, 0)

	input := validInput()
	input.Items = []orderdto.OrderLineInput{{ProductID: "p2", Quantity: 3}}

	_, err := f.uc.CreateOrder(input)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Paring Knife")
	assert.Contains(t, err.Error(), "only 2 in stock")

	// nothing written, nothing decremented
	assert.Equal(t, 2, f.products.stock("p2"))
	assert.Empty(t, f.orders.orders)
}

func TestCreateOrderPartialFailureLeavesStockUntouched(t *testing.T) {
	f := newOrderFixture(t, 0)

	// first line would fit, second cannot; neither may be decremented
	input := validInput()
	input.Items = []orderdto.OrderLineInput{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 5},
	}

	_, err := f.uc.CreateOrder(input)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.products.stock("p1"))
	assert.Equal(t, 2, f.products.stock("p2"))
}

func TestCreateOrderDraftStoreHidden(t *testing.T) {
	f := newOrderFixture(t, 0)

	input := validInput()
	input.StoreID = "store-2"
	input.Items = []orderdto.OrderLineInput{{ProductID: "p1", Quantity: 1}}

	_, err := f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestCreateOrderRejectsForeignAndInactiveProducts(t *testing.T) {
	f := newOrderFixture(t, 0)

	input := validInput()
	input.Items = []orderdto.OrderLineInput{{ProductID: "p3", Quantity: 1}}
	_, err := f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	input.Items = []orderdto.OrderLineInput{{ProductID: "missing", Quantity: 1}}
	_, err = f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newOrderFixture(t, 0)

	input := validInput()
	input.Items = nil
	_, err := f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = validInput()
	input.CustomerName = ""
	_, err = f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = validInput()
	input.PaymentMethod = "cheque"
	_, err = f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = validInput()
	input.Items[0].Quantity = 0
	_, err = f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = validInput()
	input.ShippingFee = decimal.NewFromInt(-5)
	_, err = f.uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSimulatedPaymentCompletesOrder(t *testing.T) {
	f := newOrderFixture(t, 5*time.Millisecond)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := f.orders.GetOrderByID(order.ID)
		return err == nil &&
			got.PaymentStatus == domain.PaymentStatusCompleted &&
			got.Status == domain.OrderStatusProcessing
	}, time.Second, 5*time.Millisecond)
}

func TestSimulatedPaymentSkipsCancelledOrder(t *testing.T) {
	f := newOrderFixture(t, 20*time.Millisecond)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelOrder(order.ID, "owner-1"))

	time.Sleep(60 * time.Millisecond)
	got, err := f.orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
	assert.NotEqual(t, domain.PaymentStatusCompleted, got.PaymentStatus)
}

// The payment callback flips status and payment in one conditional
// write, so a cancellation that lands first can never be overwritten
// back to processing.
func TestCompletePaymentLeavesCancelledOrderAlone(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)
	require.NoError(t, f.uc.CancelOrder(order.ID, "owner-1"))

	completed, err := f.orders.CompletePaymentIfPending(order.ID)
	require.NoError(t, err)
	assert.False(t, completed)

	got, err := f.orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
	assert.NotEqual(t, domain.PaymentStatusCompleted, got.PaymentStatus)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)
	require.Equal(t, 3, f.products.stock("p1"))

	require.NoError(t, f.uc.CancelOrder(order.ID, "owner-1"))

	assert.Equal(t, 5, f.products.stock("p1"))
	assert.Equal(t, 2, f.products.stock("p2"))

	got, err := f.orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
}

func TestCancelOrderRefundsCompletedPayment(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)
	require.NoError(t, f.orders.UpdatePaymentStatus(order.ID, domain.PaymentStatusCompleted))

	require.NoError(t, f.uc.CancelOrder(order.ID, "owner-1"))

	got, err := f.orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.PaymentStatus)
}

func TestCancelOrderWrongOwner(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.CancelOrder(order.ID, "owner-2"), domain.ErrOrderNotFound)
	assert.Equal(t, 3, f.products.stock("p1"))
}

func TestCancelShippedOrderRejected(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)
	require.NoError(t, f.orders.UpdateOrderStatus(order.ID, domain.OrderStatusShipped))

	assert.ErrorIs(t, f.uc.CancelOrder(order.ID, "owner-1"), domain.ErrInvalidStatus)
	assert.Equal(t, 3, f.products.stock("p1"), "shipped cancellation must not restore stock")
}

func TestUpdateStatusFollowsMachine(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	_, err = f.uc.UpdateStatus(order.ID, "owner-1", domain.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, err := f.uc.UpdateStatus(order.ID, "owner-1", domain.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, got.Status)

	got, err = f.uc.UpdateStatus(order.ID, "owner-1", domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)

	got, err = f.uc.UpdateStatus(order.ID, "owner-1", domain.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, got.Status)

	_, err = f.uc.UpdateStatus(order.ID, "owner-1", domain.OrderStatusCancelled)
	assert.Error(t, err)
}

func TestUpdateStatusCancelRoutesThroughCancel(t *testing.T) {
	f := newOrderFixture(t, 0)

	order, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	got, err := f.uc.UpdateStatus(order.ID, "owner-1", domain.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
	assert.Equal(t, 5, f.products.stock("p1"))
}

func TestGetStoreOrdersOwnership(t *testing.T) {
	f := newOrderFixture(t, 0)

	_, err := f.uc.CreateOrder(validInput())
	require.NoError(t, err)

	orders, total, err := f.uc.GetStoreOrders("store-1", "owner-1", 0, 500)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.EqualValues(t, 1, total)

	_, _, err = f.uc.GetStoreOrders("store-1", "owner-2", 1, 10)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
