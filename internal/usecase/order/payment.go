package order

import "time"

// simulatePayment stands in for the out-of-process gateway callback: after
// a fixed delay the payment flips to completed and the order advances to
// processing. No retry or cancellation semantics; a cancelled order simply
// ignores the late callback.
func (uc *DefaultOrderUsecase) simulatePayment(orderID string) {
	if uc.PaymentDelay <= 0 {
		return
	}
	go func() {
		time.Sleep(uc.PaymentDelay)

		// Single conditional write: the flip only lands while the order is
		// still pending, so a cancellation in flight wins the race.
		completed, err := uc.OrderRepo.CompletePaymentIfPending(orderID)
		if err != nil {
			uc.Logger.Error().Err(err).Str("order_id", orderID).Msg("payment simulation: payment update failed")
			return
		}
		if !completed {
			return
		}

		order, err := uc.OrderRepo.GetOrderByID(orderID)
		if err != nil {
			uc.Logger.Error().Err(err).Str("order_id", orderID).Msg("payment simulation: order lookup failed")
			return
		}
		uc.publishEvent(order)
	}()
}
