package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motoisle_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// BookingsCreated counts confirmed bookings by pickup location.
	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motoisle_bookings_created_total",
		Help: "Total number of bookings created, by pickup location",
	}, []string{"pickup"})

	// FavoriteOps counts favorite mutations by action (add/remove).
	FavoriteOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motoisle_favorite_ops_total",
		Help: "Total number of favorite add/remove operations",
	}, []string{"action"})

	// CatalogSearches counts listing searches by sort mode.
	CatalogSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motoisle_catalog_searches_total",
		Help: "Total number of catalog list/search requests by sort mode",
	}, []string{"sort"})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates (once) the Prometheus HTTP middleware for the service.
// Repeated calls return the same instance so test servers do not re-register
// collectors.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
