package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Leganyst/time-manager/internal/pagination"
	"github.com/Leganyst/time-manager/internal/service"
)

// HoursService is what the handlers need from the service layer.
type HoursService interface {
	Status(ctx context.Context, contactCenterID string, at *time.Time) (service.Status, error)
	ListContactCenters(ctx context.Context, req pagination.Request) (pagination.Page[service.ContactCenterSummary], error)
}

type Options struct {
	AllowedOrigins []string
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// Ping checks storage for /healthz; nil always reports ok.
	Ping func(ctx context.Context) error
}

func NewRouter(svc HoursService, opts Options) http.Handler {
	h := &handler{svc: svc, ping: opts.Ping}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(WithRequestID)
	r.Use(WithLogging)
	r.Use(WithRecovery)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/contact-centers", func(r chi.Router) {
		r.Get("/", h.listContactCenters)
		r.Get("/{contactCenterID}/hours", h.hours)
	})

	return r
}
