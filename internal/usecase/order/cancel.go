package order

import (
	"fmt"

	"github.com/andromedanny/storefront-service/internal/domain"
)

// CancelOrder flips the order to cancelled and restores stock for every
// line. Only pending and processing orders can be cancelled; the
// repository enforces that inside the same transaction as the restore.
func (uc *DefaultOrderUsecase) CancelOrder(orderID, ownerID string) error {
	order, err := uc.ownedOrder(orderID, ownerID)
	if err != nil {
		return err
	}

	if err := uc.OrderRepo.CancelOrderWithStock(order.ID); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	if order.PaymentStatus == domain.PaymentStatusCompleted {
		if err := uc.OrderRepo.UpdatePaymentStatus(order.ID, domain.PaymentStatusRefunded); err != nil {
			uc.Logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to mark payment refunded")
		}
	}

	uc.Metrics.OrdersCancelledTotal.WithLabelValues(order.StoreID).Inc()
	order.Status = domain.OrderStatusCancelled
	uc.publishEvent(order)
	return nil
}
