package store

import (
	"context"

	"github.com/andromedanny/storefront-service/internal/domain"
	publisher "github.com/andromedanny/storefront-service/internal/infrastructure/kafka"
	"github.com/andromedanny/storefront-service/internal/infrastructure/metrics"
	"github.com/andromedanny/storefront-service/internal/render"
	storedto "github.com/andromedanny/storefront-service/internal/usecase/dto/store"
	"github.com/rs/zerolog"
)

type Usecase interface {
	CreateStore(input *storedto.CreateStoreInput) (*domain.Store, error)
	UpdateStore(input *storedto.UpdateStoreInput) (*domain.Store, error)
	DeleteStore(storeID, ownerID string) error
	GetStoreByID(storeID, ownerID string) (*domain.Store, error)
	GetStoresByOwnerID(ownerID string) ([]*domain.Store, error)

	SaveContent(ctx context.Context, input *storedto.SaveContentInput) error
	SetStatus(ctx context.Context, input *storedto.SetStatusInput) (*domain.Store, error)

	ResolvePublished(domainName string) (*PublishedStore, error)
	RenderPage(ctx context.Context, domainName string) (string, error)
	RenderMutations(domainName string) ([]render.Mutation, error)
	PreviewMutations(storeID, ownerID string) ([]render.Mutation, error)

	InvalidatePage(ctx context.Context, storeID string)
}

// PublishedStore is what the public JSON endpoint hands the client bundle.
type PublishedStore struct {
	Store    *domain.Store
	Products []*domain.Product
}

type DefaultStoreUsecase struct {
	StoreRepo    domain.StoreRepository
	ProductRepo  domain.ProductRepository
	PageCache    domain.PageCachePort
	Publisher    *publisher.DefaultKafkaPublisher
	Metrics      *metrics.StorefrontMetrics
	StoreTopic   string
	AssetBaseURL string
	Logger       *zerolog.Logger
}

func NewDefaultStoreUsecase(
	storeRepo domain.StoreRepository,
	productRepo domain.ProductRepository,
	pageCache domain.PageCachePort,
	pub *publisher.DefaultKafkaPublisher,
	storefrontMetrics *metrics.StorefrontMetrics,
	storeTopic string,
	assetBaseURL string,
	logger *zerolog.Logger) *DefaultStoreUsecase {

	return &DefaultStoreUsecase{
		StoreRepo:    storeRepo,
		ProductRepo:  productRepo,
		PageCache:    pageCache,
		Publisher:    pub,
		Metrics:      storefrontMetrics,
		StoreTopic:   storeTopic,
		AssetBaseURL: assetBaseURL,
		Logger:       logger,
	}
}
