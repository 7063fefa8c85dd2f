package mappers

import (
	"encoding/json"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	var shipping domain.ShippingAddress
	// legacy rows may hold malformed shipping blobs; render them empty
	_ = json.Unmarshal([]byte(model.ShippingJSON), &shipping)

	items := make([]*domain.OrderItem, 0, len(model.Items))
	for i := range model.Items {
		items = append(items, ToDomainOrderItem(&model.Items[i]))
	}

	return &domain.Order{
		ID:            model.ID,
		StoreID:       model.StoreID,
		OrderNumber:   model.OrderNumber,
		Status:        model.Status,
		PaymentMethod: model.PaymentMethod,
		PaymentStatus: model.PaymentStatus,
		Subtotal:      model.Subtotal,
		ShippingFee:   model.ShippingFee,
		Total:         model.Total,
		Shipping:      shipping,
		CustomerName:  model.CustomerName,
		CustomerEmail: model.CustomerEmail,
		CustomerPhone: model.CustomerPhone,
		Items:         items,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToDomainOrderItem(model *models.OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		ID:        model.ID,
		OrderID:   model.OrderID,
		ProductID: model.ProductID,
		Name:      model.Name,
		Quantity:  model.Quantity,
		UnitPrice: model.UnitPrice,
		Subtotal:  model.Subtotal,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	shippingJSON, err := json.Marshal(order.Shipping)
	if err != nil {
		shippingJSON = []byte("{}")
	}

	items := make([]models.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return &models.OrderModel{
		ID:            order.ID,
		StoreID:       order.StoreID,
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.Total,
		ShippingJSON:  string(shippingJSON),
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
