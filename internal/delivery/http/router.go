package http

import (
	"net/http"

	"github.com/andromedanny/storefront-service/internal/delivery/http/handlers"
	"github.com/andromedanny/storefront-service/internal/delivery/http/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	StoreHandler   *handlers.StoreHandler
	ProductHandler *handlers.ProductHandler
	OrderHandler   *handlers.OrderHandler
	PublicHandler  *handlers.PublicHandler
	UploadHandler  *handlers.UploadHandler
	UploadDir      string
	Logger         *zerolog.Logger
}

// NewRouter wires the public storefront surface and the authenticated
// owner API onto one chi mux.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(deps.Logger))
	r.Use(middleware.RecoverMiddleware(deps.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Visitor-facing routes, no authentication.
	r.Get("/store/{domain}", deps.PublicHandler.StorePage)
	r.Route("/api/v1/public", func(r chi.Router) {
		r.Get("/stores/{domain}", deps.PublicHandler.ResolveStore)
		r.Get("/stores/{domain}/mutations", deps.PublicHandler.StoreMutations)
		r.Post("/orders", deps.PublicHandler.CreateOrder)
	})

	if deps.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir))))
	}

	// Owner API. Identity arrives from the gateway in X-User-ID.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/templates", deps.StoreHandler.ListTemplates)
		r.Post("/uploads/images", deps.UploadHandler.UploadImage)

		r.Route("/stores", func(r chi.Router) {
			r.Post("/", deps.StoreHandler.CreateStore)
			r.Get("/", deps.StoreHandler.ListStores)

			r.Route("/{storeID}", func(r chi.Router) {
				r.Get("/", deps.StoreHandler.GetStore)
				r.Put("/", deps.StoreHandler.UpdateStore)
				r.Delete("/", deps.StoreHandler.DeleteStore)
				r.Put("/content", deps.StoreHandler.SaveContent)
				r.Put("/status", deps.StoreHandler.SetStatus)
				r.Get("/preview/mutations", deps.StoreHandler.PreviewMutations)

				r.Post("/products", deps.ProductHandler.CreateProduct)
				r.Get("/products", deps.ProductHandler.ListProducts)

				r.Get("/orders", deps.OrderHandler.ListOrders)
			})
		})

		r.Route("/products/{productID}", func(r chi.Router) {
			r.Get("/", deps.ProductHandler.GetProduct)
			r.Put("/", deps.ProductHandler.UpdateProduct)
			r.Delete("/", deps.ProductHandler.DeleteProduct)
		})

		r.Route("/orders/{orderID}", func(r chi.Router) {
			r.Get("/", deps.OrderHandler.GetOrder)
			r.Put("/status", deps.OrderHandler.UpdateStatus)
		})
	})

	return r
}
