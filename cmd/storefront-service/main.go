package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/andromedanny/storefront-service/internal/config"
	httpdelivery "github.com/andromedanny/storefront-service/internal/delivery/http"
	"github.com/andromedanny/storefront-service/internal/delivery/http/handlers"
	"github.com/andromedanny/storefront-service/internal/infrastructure/logger"
	"github.com/andromedanny/storefront-service/internal/infrastructure/metrics"
	"github.com/andromedanny/storefront-service/internal/infrastructure/migrate"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/repository"
	rediscache "github.com/andromedanny/storefront-service/internal/infrastructure/redis"
	"github.com/andromedanny/storefront-service/internal/infrastructure/storage"
	publisher "github.com/andromedanny/storefront-service/internal/infrastructure/kafka"
	orderusecase "github.com/andromedanny/storefront-service/internal/usecase/order"
	productusecase "github.com/andromedanny/storefront-service/internal/usecase/product"
	storeusecase "github.com/andromedanny/storefront-service/internal/usecase/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	appLogger := logger.New(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.StoreDB.MigrationsDir != "" {
		if err := migrate.Run(db, cfg.StoreDB.MigrationsDir, &appLogger); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	pub := publisher.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()

	// Init page cache
	pageCache := rediscache.NewPageCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PageTTL)
	defer pageCache.Close()

	// Init object storage
	imageStorage, err := storage.NewLocalStorage(cfg.Assets.UploadDir, cfg.Assets.BaseURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to init image storage")
	}

	storefrontMetrics := metrics.NewStorefrontMetrics()

	// Init repos
	storeRepo := repository.NewDefaultStoreRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)

	// Init usecases
	storeUsecase := storeusecase.NewDefaultStoreUsecase(
		storeRepo,
		productRepo,
		pageCache,
		pub,
		storefrontMetrics,
		cfg.Kafka.StoreTopic,
		cfg.Assets.BaseURL,
		&appLogger,
	)
	productUsecase := productusecase.NewDefaultProductUsecase(
		productRepo,
		storeRepo,
		imageStorage,
		storeUsecase,
		cfg.Assets.Bucket,
		&appLogger,
	)
	orderUsecase, err := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		productRepo,
		storeRepo,
		pub,
		storefrontMetrics,
		cfg.Kafka.OrderTopic,
		cfg.Payments.SimulatedDelay,
		&appLogger,
	)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to init order usecase")
	}

	// Init handlers
	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		StoreHandler:   handlers.NewStoreHandler(storeUsecase),
		ProductHandler: handlers.NewProductHandler(productUsecase),
		OrderHandler:   handlers.NewOrderHandler(orderUsecase),
		PublicHandler:  handlers.NewPublicHandler(storeUsecase, orderUsecase),
		UploadHandler:  handlers.NewUploadHandler(imageStorage, cfg.Assets.Bucket, &appLogger),
		UploadDir:      cfg.Assets.UploadDir,
		Logger:         &appLogger,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	appLogger.Info().Str("addr", addr).Msg("http server started")
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatal().Err(err).Msg("http server failed")
	}
}
