package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"donations/internal/http/handlers"
	"donations/internal/middleware"
)

// NewRouter builds the route table resolved at startup. The plugin dispatched
// through framework hooks; here every route is registered explicitly.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Cfg.AllowedOrigins),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	// Public widget surface
	r.Group(func(r chi.Router) {
		r.Use(middleware.I18N(app.Cfg.DefaultLocale, lookup))
		r.Get("/v1/widget", app.WidgetRender)
		r.Get("/v1/widget/summary", app.WidgetSummary)
	})

	// Ingestion: the single write path, rate limited per client IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute))
		r.Post("/v1/donations", app.DonationsSave)
	})

	// Admin surface
	r.Route("/v1/admin", func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.Cfg.JWTSecret))
		r.Get("/donations", app.AdminDonations)
		r.Get("/settings", app.AdminSettingsGet)
		r.Put("/settings", app.AdminSettingsUpdate)
	})

	// Docs and metrics
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
