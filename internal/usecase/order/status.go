package order

import (
	"fmt"

	"github.com/andromedanny/storefront-service/internal/domain"
)

// UpdateStatus moves an order along pending -> processing -> shipped ->
// completed. Cancellation goes through CancelOrder so the stock restore
// stays transactional.
func (uc *DefaultOrderUsecase) UpdateStatus(orderID, ownerID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.ownedOrder(orderID, ownerID)
	if err != nil {
		return nil, err
	}

	if status == domain.OrderStatusCancelled {
		if err := uc.CancelOrder(orderID, ownerID); err != nil {
			return nil, err
		}
		order.Status = domain.OrderStatusCancelled
		return order, nil
	}

	if !order.CanTransitionTo(status) {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, status, domain.ErrInvalidStatus)
	}

	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = status
	uc.publishEvent(order)
	return order, nil
}
