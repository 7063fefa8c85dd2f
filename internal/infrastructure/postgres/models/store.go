package models

import (
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	"gorm.io/gorm"
)

type StoreModel struct {
	ID           string             `gorm:"primaryKey;type:uuid"`
	OwnerID      string             `gorm:"index:idx_store_owner;not null"`
	Name         string             `gorm:"not null"`
	Description  string
	TemplateID   string             `gorm:"not null;default:'bladesmith'"`
	DomainName   string             `gorm:"uniqueIndex:idx_store_domain;not null"`
	Status       domain.StoreStatus `gorm:"index:idx_store_status;default:'draft'"`
	ContentJSON  string             `gorm:"type:jsonb;default:'{}'"`
	ContactEmail string
	Phone        string
	Barangay     string
	Municipality string
	Province     string
	Region       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (StoreModel) TableName() string {
	return "stores"
}
