package publisher

// OrderEvent is emitted on order creation, cancellation, and status
// changes. Fulfillment dashboards and notification consumers subscribe
// to the order topic.
type OrderEvent struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	StoreID     string `json:"store_id"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	ItemCount   int    `json:"item_count"`
}

// StoreEvent is emitted when a store goes published or back to draft.
type StoreEvent struct {
	StoreID    string `json:"store_id"`
	DomainName string `json:"domain_name"`
	Status     string `json:"status"`
}
