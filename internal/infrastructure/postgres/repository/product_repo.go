package repository

import (
	"errors"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	return r.DB.Create(productModel).Error
}

func (r *DefaultProductRepository) UpdateProduct(product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	return r.DB.Save(productModel).Error
}

func (r *DefaultProductRepository) DeleteProduct(productID string) error {
	res := r.DB.Delete(&models.ProductModel{}, "id = ?", productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var product models.ProductModel
	if err := r.DB.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&product), nil
}

func (r *DefaultProductRepository) GetProductsByStoreID(storeID string) ([]*domain.Product, error) {
	return r.findProducts("store_id = ?", storeID)
}

func (r *DefaultProductRepository) GetActiveProductsByStoreID(storeID string) ([]*domain.Product, error) {
	return r.findProducts("store_id = ? AND is_active = ?", storeID, true)
}

func (r *DefaultProductRepository) findProducts(query string, args ...interface{}) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	if err := r.DB.Where(query, args...).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, mappers.ToDomainProduct(&productModels[i]))
	}
	return products, nil
}
