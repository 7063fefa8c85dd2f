package repository

import (
	"errors"
	"fmt"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// CreateOrderWithStock writes the order row, its items, and the stock
// decrements in a single transaction. The decrement is conditional on
// stock >= quantity so two concurrent orders cannot both take the last
// unit: the loser's conditional update touches zero rows and the whole
// transaction rolls back as insufficient stock.
func (r *DefaultOrderRepository) CreateOrderWithStock(order *domain.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&models.ProductModel{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %q: %w", item.Name, domain.ErrInsufficientStock)
			}
		}

		orderModel := mappers.ToGORMOrder(order)
		if err := tx.Create(orderModel).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrdersByStoreID(storeID string, page, limit int) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.Model(&models.OrderModel{}).Where("store_id = ?", storeID)
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := baseQuery.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, mappers.ToDomainOrder(&orderModels[i]))
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	res := r.DB.Model(&models.OrderModel{}).Where("id = ?", orderID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) CompletePaymentIfPending(orderID string) (bool, error) {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":         domain.OrderStatusProcessing,
			"payment_status": domain.PaymentStatusCompleted,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DefaultOrderRepository) UpdatePaymentStatus(orderID string, status domain.PaymentStatus) error {
	res := r.DB.Model(&models.OrderModel{}).Where("id = ?", orderID).Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// CancelOrderWithStock flips the order to cancelled and puts every line's
// quantity back on the shelf, all in one transaction.
func (r *DefaultOrderRepository) CancelOrderWithStock(orderID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var order models.OrderModel
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusProcessing {
			return domain.ErrInvalidStatus
		}

		if err := tx.Model(&models.OrderModel{}).Where("id = ?", orderID).
			Update("status", domain.OrderStatusCancelled).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.ProductModel{}).
				Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
