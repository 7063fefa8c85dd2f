package store

import (
	"context"
	"fmt"
	"time"

	"github.com/andromedanny/storefront-service/internal/domain"
	publisher "github.com/andromedanny/storefront-service/internal/infrastructure/kafka"
	storedto "github.com/andromedanny/storefront-service/internal/usecase/dto/store"
)

// SetStatus flips the publication gate. The only accepted values are
// "published" and "draft"; flipping never touches content.
func (uc *DefaultStoreUsecase) SetStatus(ctx context.Context, input *storedto.SetStatusInput) (*domain.Store, error) {
	var status domain.StoreStatus
	switch input.Status {
	case string(domain.StoreStatusPublished):
		status = domain.StoreStatusPublished
	case string(domain.StoreStatusDraft):
		status = domain.StoreStatusDraft
	default:
		return nil, fmt.Errorf("status must be published or draft: %w", domain.ErrValidation)
	}

	store, err := uc.ownedStore(input.StoreID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if store.Status == status {
		return store, nil
	}

	if err := uc.StoreRepo.UpdateStatus(store.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	store.Status = status
	store.UpdatedAt = time.Now()

	if status == domain.StoreStatusDraft {
		// an unpublished store must drop off its domain immediately
		if uc.PageCache != nil {
			if err := uc.PageCache.InvalidatePage(ctx, store.DomainName); err != nil {
				uc.Logger.Warn().Err(err).Str("domain", store.DomainName).Msg("failed to invalidate page cache")
			}
		}
		uc.Metrics.StoresUnpublishedTotal.WithLabelValues(store.TemplateID).Inc()
	} else {
		uc.Metrics.StoresPublishedTotal.WithLabelValues(store.TemplateID).Inc()
	}

	if uc.Publisher != nil {
		go func(event publisher.StoreEvent) {
			if err := uc.Publisher.PublishStore(uc.StoreTopic, event); err != nil {
				uc.Logger.Error().Err(err).Str("store_id", event.StoreID).Msg("failed to publish store event")
			}
		}(publisher.StoreEvent{
			StoreID:    store.ID,
			DomainName: store.DomainName,
			Status:     string(status),
		})
	}

	return store, nil
}
