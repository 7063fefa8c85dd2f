package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/mappers"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) CreateStore(store *domain.Store) error {
	storeModel := mappers.ToGORMStore(store)
	if err := r.DB.Create(storeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateDomain
		}
		return err
	}
	return nil
}

func (r *DefaultStoreRepository) UpdateStore(store *domain.Store) error {
	storeModel := mappers.ToGORMStore(store)
	if err := r.DB.Save(storeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateDomain
		}
		return err
	}
	return nil
}

func (r *DefaultStoreRepository) DeleteStore(storeID string) error {
	res := r.DB.Delete(&models.StoreModel{}, "id = ?", storeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (r *DefaultStoreRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	var store models.StoreModel
	if err := r.DB.First(&store, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&store), nil
}

func (r *DefaultStoreRepository) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	if err := r.DB.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&storeModels).Error; err != nil {
		return nil, err
	}
	stores := make([]*domain.Store, 0, len(storeModels))
	for i := range storeModels {
		stores = append(stores, mappers.ToDomainStore(&storeModels[i]))
	}
	return stores, nil
}

// GetPublishedStoreByDomain is the publication gate lookup. A draft store
// and an unknown domain are both ErrStoreNotFound on purpose, so callers
// cannot probe for unpublished stores.
func (r *DefaultStoreRepository) GetPublishedStoreByDomain(domainName string) (*domain.Store, error) {
	var store models.StoreModel
	err := r.DB.First(&store, "domain_name = ? AND status = ?", domainName, domain.StoreStatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStore(&store), nil
}

func (r *DefaultStoreRepository) DomainExists(domainName string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.StoreModel{}).Where("domain_name = ?", domainName).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultStoreRepository) SaveContent(storeID string, content domain.Content) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return err
	}
	res := r.DB.Model(&models.StoreModel{}).Where("id = ?", storeID).
		Updates(map[string]interface{}{"content_json": string(contentJSON), "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (r *DefaultStoreRepository) UpdateStatus(storeID string, status domain.StoreStatus) error {
	res := r.DB.Model(&models.StoreModel{}).Where("id = ?", storeID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}
