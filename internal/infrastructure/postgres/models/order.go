package models

import (
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID            string               `gorm:"primaryKey;type:uuid"`
	StoreID       string               `gorm:"type:uuid;index:idx_order_store;not null"`
	Store         StoreModel           `gorm:"foreignKey:StoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	OrderNumber   string               `gorm:"uniqueIndex:idx_order_number;not null"`
	Status        domain.OrderStatus   `gorm:"index:idx_order_status;default:'pending'"`
	PaymentMethod domain.PaymentMethod `gorm:"not null"`
	PaymentStatus domain.PaymentStatus `gorm:"default:'pending'"`
	Subtotal      decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	ShippingFee   decimal.Decimal      `gorm:"type:numeric(12,2);not null;default:0"`
	Total         decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	ShippingJSON  string               `gorm:"type:jsonb;default:'{}'"`
	CustomerName  string               `gorm:"not null"`
	CustomerEmail string
	CustomerPhone string
	Items         []OrderItemModel     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time            `gorm:"index:idx_order_created"`
	UpdatedAt     time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	OrderID   string          `gorm:"type:uuid;index:idx_item_order;not null"`
	ProductID string          `gorm:"type:uuid;not null"`
	Name      string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
