package order

import (
	"github.com/andromedanny/storefront-service/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrder(orderID, ownerID string) (*domain.Order, error) {
	return uc.ownedOrder(orderID, ownerID)
}

func (uc *DefaultOrderUsecase) GetStoreOrders(storeID, ownerID string, page, limit int) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return nil, 0, err
	}
	if store.OwnerID != ownerID {
		return nil, 0, domain.ErrStoreNotFound
	}

	return uc.OrderRepo.GetOrdersByStoreID(storeID, page, limit)
}

// ownedOrder loads an order and verifies the caller owns the store it was
// placed against.
func (uc *DefaultOrderUsecase) ownedOrder(orderID, ownerID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	store, err := uc.StoreRepo.GetStoreByID(order.StoreID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}
	if store.OwnerID != ownerID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
