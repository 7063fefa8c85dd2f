package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StorefrontMetrics holds the service counters and histograms. Label
// cardinality stays at store id / template id level.
type StorefrontMetrics struct {
	OrdersCreatedTotal   *prometheus.CounterVec
	OrdersCancelledTotal *prometheus.CounterVec
	OrderErrorsTotal     *prometheus.CounterVec

	StoresPublishedTotal   *prometheus.CounterVec
	StoresUnpublishedTotal *prometheus.CounterVec

	RenderDuration *prometheus.HistogramVec
	PageCacheHits  prometheus.Counter
	PageCacheMiss  prometheus.Counter
}

func NewStorefrontMetrics() *StorefrontMetrics {
	return &StorefrontMetrics{
		OrdersCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders accepted, by store",
		}, []string{"store_id", "payment_method"}),

		OrdersCancelledTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_orders_cancelled_total",
			Help: "Orders cancelled, by store",
		}, []string{"store_id"}),

		OrderErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_order_errors_total",
			Help: "Order intake rejections by reason",
		}, []string{"reason"}),

		StoresPublishedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_stores_published_total",
			Help: "Publish actions, by template",
		}, []string{"template_id"}),

		StoresUnpublishedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_stores_unpublished_total",
			Help: "Unpublish actions, by template",
		}, []string{"template_id"}),

		RenderDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_render_duration_seconds",
			Help:    "Template materialization latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"template_id", "path"}),

		PageCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_page_cache_hits_total",
			Help: "Rendered page cache hits",
		}),

		PageCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_page_cache_misses_total",
			Help: "Rendered page cache misses",
		}),
	}
}
