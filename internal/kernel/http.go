// Package kernel assembles the HTTP handler: global middleware, the
// /metrics endpoint, JSON 404/405 bodies and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/routes"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/config"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/metrics"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/middleware"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/reqid"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/response"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/router"
)

type HTTPKernel struct {
	router *router.Router
}

// Option customises the kernel before routes are mounted.
type Option func(*options)

type options struct {
	limiter middleware.Limiter
	noLimit bool
}

// WithLimiter replaces the configured rate limiter.
func WithLimiter(l middleware.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithoutRateLimit disables rate limiting regardless of configuration.
func WithoutRateLimit() Option {
	return func(o *options) { o.noLimit = true }
}

// NewHTTPKernel builds the router. A nil db uses the global connection.
func NewHTTPKernel(db *gorm.DB, opts ...Option) *HTTPKernel {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := router.New()

	// Outermost first: metrics see total latency, recovery runs before
	// anything can panic unobserved, the request id exists before logging.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	if l := o.resolveLimiter(); l != nil {
		r.Use(middleware.RateLimit(l))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.Err(w, req, response.NewHTTPError(http.StatusNotFound,
			"The requested URL was not found on the server."))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.Err(w, req, response.NewHTTPError(http.StatusMethodNotAllowed,
			"The method is not allowed for the requested URL."))
	})

	r.Get("/metrics", "metrics", metrics.Handler())
	routes.RegisterAPI(r, db)

	return &HTTPKernel{router: r}
}

func (o options) resolveLimiter() middleware.Limiter {
	if o.noLimit {
		return nil
	}
	if o.limiter != nil {
		return o.limiter
	}

	perMinute := config.RateLimitPerMinute()
	if perMinute <= 0 {
		return nil
	}

	if addr := config.RedisAddr(); addr != "" {
		logger.Info("rate limiter backed by redis", "addr", addr, "per_minute", perMinute)
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.RedisPassword(),
		})
		return middleware.NewRedisLimiter(client, perMinute, time.Minute)
	}
	return middleware.NewMemoryLimiter(perMinute, time.Minute)
}

func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

func (k *HTTPKernel) Router() *router.Router {
	return k.router
}
