package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	productdto "github.com/andromedanny/storefront-service/internal/usecase/dto/product"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Usecase interface {
	CreateProduct(input *productdto.CreateProductInput) (*domain.Product, error)
	UpdateProduct(input *productdto.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(productID, ownerID string) error
	GetProduct(productID, ownerID string) (*domain.Product, error)
	GetStoreProducts(storeID, ownerID string) ([]*domain.Product, error)
}

// PageInvalidator is the slice of the store usecase product mutations
// need: card content lives on the rendered page, so any product change
// must drop the cached rendering.
type PageInvalidator interface {
	InvalidatePage(ctx context.Context, storeID string)
}

type DefaultProductUsecase struct {
	ProductRepo domain.ProductRepository
	StoreRepo   domain.StoreRepository
	Storage     domain.StoragePort
	Pages       PageInvalidator
	Bucket      string
	Logger      *zerolog.Logger
}

func NewDefaultProductUsecase(
	productRepo domain.ProductRepository,
	storeRepo domain.StoreRepository,
	storage domain.StoragePort,
	pages PageInvalidator,
	bucket string,
	logger *zerolog.Logger) *DefaultProductUsecase {

	return &DefaultProductUsecase{
		ProductRepo: productRepo,
		StoreRepo:   storeRepo,
		Storage:     storage,
		Pages:       pages,
		Bucket:      bucket,
		Logger:      logger,
	}
}

func (uc *DefaultProductUsecase) CreateProduct(input *productdto.CreateProductInput) (*domain.Product, error) {
	if err := uc.checkOwnership(input.StoreID, input.OwnerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("product name is required: %w", domain.ErrValidation)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", domain.ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("stock must not be negative: %w", domain.ErrValidation)
	}

	product := &domain.Product{
		ID:          uuid.New().String(),
		StoreID:     input.StoreID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.ProductRepo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.Pages.InvalidatePage(context.Background(), input.StoreID)
	return product, nil
}

func (uc *DefaultProductUsecase) UpdateProduct(input *productdto.UpdateProductInput) (*domain.Product, error) {
	product, err := uc.ownedProduct(input.ProductID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = strings.TrimSpace(input.Name)
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if !input.Price.IsNegative() && !input.Price.IsZero() {
		product.Price = input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, fmt.Errorf("stock must not be negative: %w", domain.ErrValidation)
		}
		product.Stock = *input.Stock
	}
	if input.Image != "" && input.Image != product.Image {
		uc.deleteImage(product.Image)
		product.Image = input.Image
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.ProductRepo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.Pages.InvalidatePage(context.Background(), product.StoreID)
	return product, nil
}

func (uc *DefaultProductUsecase) DeleteProduct(productID, ownerID string) error {
	product, err := uc.ownedProduct(productID, ownerID)
	if err != nil {
		return err
	}
	if err := uc.ProductRepo.DeleteProduct(productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	uc.deleteImage(product.Image)
	uc.Pages.InvalidatePage(context.Background(), product.StoreID)
	return nil
}

func (uc *DefaultProductUsecase) GetProduct(productID, ownerID string) (*domain.Product, error) {
	return uc.ownedProduct(productID, ownerID)
}

func (uc *DefaultProductUsecase) GetStoreProducts(storeID, ownerID string) ([]*domain.Product, error) {
	if err := uc.checkOwnership(storeID, ownerID); err != nil {
		return nil, err
	}
	return uc.ProductRepo.GetProductsByStoreID(storeID)
}

func (uc *DefaultProductUsecase) checkOwnership(storeID, ownerID string) error {
	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return err
	}
	if store.OwnerID != ownerID {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (uc *DefaultProductUsecase) ownedProduct(productID, ownerID string) (*domain.Product, error) {
	product, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkOwnership(product.StoreID, ownerID); err != nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// deleteImage is fail-soft: an orphaned object is logged, never surfaced.
func (uc *DefaultProductUsecase) deleteImage(path string) {
	if path == "" || uc.Storage == nil {
		return
	}
	if err := uc.Storage.Delete(context.Background(), uc.Bucket, path); err != nil {
		uc.Logger.Warn().Err(err).Str("path", path).Msg("failed to delete product image")
	}
}
