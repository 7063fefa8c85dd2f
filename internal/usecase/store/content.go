package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/andromedanny/storefront-service/internal/domain"
	storedto "github.com/andromedanny/storefront-service/internal/usecase/dto/store"
)

// SaveContent persists the builder's content blob. The only shape rule is
// "must be a JSON object"; unknown fields are kept and individual values
// are defaulted at render time, so an older builder can never wedge a
// store into an unrenderable state.
func (uc *DefaultStoreUsecase) SaveContent(ctx context.Context, input *storedto.SaveContentInput) error {
	store, err := uc.ownedStore(input.StoreID, input.OwnerID)
	if err != nil {
		return err
	}

	// A literal null unmarshals into a nil map without error, so it has
	// to be rejected explicitly or it would wipe the saved content.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(input.Raw, &probe); err != nil || probe == nil {
		return domain.ErrInvalidContent
	}

	content := domain.ParseContent(input.Raw)
	if err := uc.StoreRepo.SaveContent(store.ID, content); err != nil {
		return fmt.Errorf("failed to save content: %w", err)
	}

	uc.invalidateIfPublished(store)
	return nil
}

func (uc *DefaultStoreUsecase) invalidateIfPublished(store *domain.Store) {
	if uc.PageCache == nil || !store.IsPublished() {
		return
	}
	if err := uc.PageCache.InvalidatePage(context.Background(), store.DomainName); err != nil {
		uc.Logger.Warn().Err(err).Str("domain", store.DomainName).Msg("failed to invalidate page cache")
	}
}

// InvalidatePage drops the cached rendering for a store's domain. Product
// mutations call through here since card content lives on the page.
func (uc *DefaultStoreUsecase) InvalidatePage(ctx context.Context, storeID string) {
	store, err := uc.StoreRepo.GetStoreByID(storeID)
	if err != nil {
		return
	}
	uc.invalidateIfPublished(store)
}
