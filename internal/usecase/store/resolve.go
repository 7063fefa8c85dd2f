package store

import (
	"context"
	"fmt"
	"time"

	"github.com/andromedanny/storefront-service/internal/render"
	"github.com/andromedanny/storefront-service/internal/template"
)

// ResolvePublished looks a store up by domain slug for the public JSON
// endpoint. Draft stores and unknown slugs are indistinguishable by
// design.
func (uc *DefaultStoreUsecase) ResolvePublished(domainName string) (*PublishedStore, error) {
	store, err := uc.StoreRepo.GetPublishedStoreByDomain(domainName)
	if err != nil {
		return nil, err
	}
	products, err := uc.ProductRepo.GetActiveProductsByStoreID(store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return &PublishedStore{Store: store, Products: products}, nil
}

// RenderPage produces the standalone server-rendered storefront document
// for environments without the client bundle. Hot domains come straight
// out of the page cache.
func (uc *DefaultStoreUsecase) RenderPage(ctx context.Context, domainName string) (string, error) {
	if uc.PageCache != nil {
		if page, ok := uc.PageCache.GetPage(ctx, domainName); ok {
			uc.Metrics.PageCacheHits.Inc()
			return page, nil
		}
		uc.Metrics.PageCacheMiss.Inc()
	}

	resolved, err := uc.ResolvePublished(domainName)
	if err != nil {
		return "", err
	}

	doc, err := uc.materialize(resolved, false, "page")
	if err != nil {
		return "", err
	}
	page := doc.HTML()

	if uc.PageCache != nil {
		if err := uc.PageCache.SetPage(ctx, domainName, page); err != nil {
			uc.Logger.Warn().Err(err).Str("domain", domainName).Msg("failed to cache page")
		}
	}
	return page, nil
}

// RenderMutations is the client sibling of RenderPage: the published-store
// view applies the returned operation list to its iframe.
func (uc *DefaultStoreUsecase) RenderMutations(domainName string) ([]render.Mutation, error) {
	resolved, err := uc.ResolvePublished(domainName)
	if err != nil {
		return nil, err
	}
	doc, err := uc.materialize(resolved, true, "mutations")
	if err != nil {
		return nil, err
	}
	return doc.Mutations(), nil
}

// PreviewMutations renders the owner's current draft for the live builder
// preview, publication status notwithstanding.
func (uc *DefaultStoreUsecase) PreviewMutations(storeID, ownerID string) ([]render.Mutation, error) {
	store, err := uc.ownedStore(storeID, ownerID)
	if err != nil {
		return nil, err
	}
	products, err := uc.ProductRepo.GetActiveProductsByStoreID(store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	doc, err := uc.materialize(&PublishedStore{Store: store, Products: products}, true, "preview")
	if err != nil {
		return nil, err
	}
	return doc.Mutations(), nil
}

func (uc *DefaultStoreUsecase) materialize(resolved *PublishedStore, interactive bool, path string) (*render.Document, error) {
	tpl := template.Lookup(resolved.Store.TemplateID)

	start := time.Now()
	doc, err := render.Materialize(tpl, resolved.Store.Content, resolved.Products, render.Profile{
		Name:         resolved.Store.Name,
		Description:  resolved.Store.Description,
		ContactEmail: resolved.Store.ContactEmail,
		Phone:        resolved.Store.Phone,
		Address:      resolved.Store.Address,
	}, render.Options{
		AssetBaseURL: uc.AssetBaseURL,
		Interactive:  interactive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to materialize store %s: %w", resolved.Store.ID, err)
	}
	uc.Metrics.RenderDuration.WithLabelValues(tpl.ID, path).Observe(time.Since(start).Seconds())
	return doc, nil
}
