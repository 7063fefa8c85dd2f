package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	storedto "github.com/andromedanny/storefront-service/internal/usecase/dto/store"
	"github.com/google/uuid"
)

// Domain slugs follow hostname-label rules: lowercase alphanumerics and
// inner hyphens, 3-63 characters.
var domainSlugRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,61}[a-z0-9])$`)

func NormalizeDomain(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if !domainSlugRe.MatchString(slug) {
		return "", domain.ErrInvalidDomain
	}
	return slug, nil
}

func (uc *DefaultStoreUsecase) CreateStore(input *storedto.CreateStoreInput) (*domain.Store, error) {
	if input.OwnerID == "" {
		return nil, fmt.Errorf("owner id is required: %w", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("store name is required: %w", domain.ErrValidation)
	}

	slug, err := NormalizeDomain(input.DomainName)
	if err != nil {
		return nil, err
	}

	taken, err := uc.StoreRepo.DomainExists(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check domain: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateDomain
	}

	store := &domain.Store{
		ID:      uuid.New().String(),
		OwnerID: input.OwnerID,
		Name:    strings.TrimSpace(input.Name),
		// unknown template ids are kept as saved; the registry falls back
		// to the default template at render time
		TemplateID:   input.TemplateID,
		DomainName:   slug,
		Description:  input.Description,
		Status:       domain.StoreStatusDraft,
		ContactEmail: input.ContactEmail,
		Phone:        input.Phone,
		Address: domain.Address{
			Barangay:     input.Barangay,
			Municipality: input.Municipality,
			Province:     input.Province,
			Region:       input.Region,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.StoreRepo.CreateStore(store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

func (uc *DefaultStoreUsecase) UpdateStore(input *storedto.UpdateStoreInput) (*domain.Store, error) {
	store, err := uc.ownedStore(input.StoreID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		store.Name = strings.TrimSpace(input.Name)
	}
	if input.Description != "" {
		store.Description = input.Description
	}
	if input.TemplateID != "" {
		store.TemplateID = input.TemplateID
	}
	if input.ContactEmail != "" {
		store.ContactEmail = input.ContactEmail
	}
	if input.Phone != "" {
		store.Phone = input.Phone
	}
	if input.Barangay != "" {
		store.Address.Barangay = input.Barangay
	}
	if input.Municipality != "" {
		store.Address.Municipality = input.Municipality
	}
	if input.Province != "" {
		store.Address.Province = input.Province
	}
	if input.Region != "" {
		store.Address.Region = input.Region
	}
	store.UpdatedAt = time.Now()

	if err := uc.StoreRepo.UpdateStore(store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	uc.invalidateIfPublished(store)
	return store, nil
}

func (uc *DefaultStoreUsecase) DeleteStore(storeID, ownerID string) error {
	store, err := uc.ownedStore(storeID, ownerID)
	if err != nil {
		return err
	}
	if err := uc.StoreRepo.DeleteStore(storeID); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	uc.invalidateIfPublished(store)
	return nil
}

func (uc *DefaultStoreUsecase) GetStoreByID(storeID, ownerID string) (*domain.Store, error) {
	return uc.ownedStore(storeID, ownerID)
}

func (uc *DefaultStoreUsecase) GetStoresByOwnerID(ownerID string) ([]*domain.Store, error) {
	return uc.StoreRepo.GetStoresByOwnerID(ownerID)
}

// ownedStore loads a store and verifies ownership. A store owned by
// someone else reads as not-found so store ids cannot be probed.
func (uc *DefaultStoreUsecase) ownedStore(storeID, ownerID string) (*domain.Store, error) {
	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}
