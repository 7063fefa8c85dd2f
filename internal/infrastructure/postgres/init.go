package postgres

import (
	"log"

	"github.com/andromedanny/storefront-service/internal/config"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.StorefrontConfig) *gorm.DB {
	dsn := cfg.StoreDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.StoreModel{}, &models.ProductModel{}, &models.OrderModel{}, &models.OrderItemModel{})

	return db
}
