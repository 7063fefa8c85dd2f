package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	StoreID     string          `gorm:"type:uuid;index:idx_product_store;not null"`
	Store       StoreModel      `gorm:"foreignKey:StoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Image       string
	IsActive    bool            `gorm:"default:true;index:idx_product_active"`
	CreatedAt   time.Time       `gorm:"index:idx_product_created"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ProductModel) TableName() string {
	return "products"
}
