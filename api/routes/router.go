package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riffus/hyperswitch/api/controllers"
	"github.com/riffus/hyperswitch/api/middleware"
	"github.com/riffus/hyperswitch/internal/forex"
	"github.com/riffus/hyperswitch/internal/health"
	"github.com/riffus/hyperswitch/internal/paymentlinks"
	"github.com/riffus/hyperswitch/pkg/config"
	"github.com/riffus/hyperswitch/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	healthService *health.Service,
	linkService *paymentlinks.Service,
	forexService *forex.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, healthService, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/payment_link", func(r chi.Router) {
		r.Post("/list", controllers.ListPaymentLinks(linkService, logg))
		r.Get("/{merchantId}/{paymentId}", controllers.InitiatePaymentLink(linkService, logg))
		r.Get("/{paymentLinkId}", controllers.RetrievePaymentLink(linkService, logg))
	})

	r.Route("/forex", func(r chi.Router) {
		r.Get("/", controllers.ForexRates(forexService, logg))
		r.Get("/convert", controllers.ForexConvert(forexService, logg))
	})

	r.Route("/payouts", func(r chi.Router) {
		r.Post("/validate", controllers.ValidatePayout(logg))
	})

	return r
}
