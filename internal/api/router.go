package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/api/handler"
	apimw "github.com/vigilhub/attention-escalator/internal/api/middleware"
	"github.com/vigilhub/attention-escalator/internal/directory"
	"github.com/vigilhub/attention-escalator/internal/engine"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	eng *engine.Engine,
	dir *directory.Client,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)          // recover panics, return 500
	r.Use(chimw.RealIP)             // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1<<20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)      // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))

	// --- handler instances ---
	eh := handler.NewEscalationHandler(eng, logger)
	ah := handler.NewAckHandler(eng, logger)
	ph := handler.NewPreferenceHandler(eng, logger)
	pm := handler.NewPermissionHandler(eng, logger)
	sh := handler.NewStateHandler(eng)
	dh := handler.NewDirectoryHandler(dir, logger)
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/health", hh.Health)

	// Raw Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", sh.Get)

		r.Post("/check", eh.Check)
		r.Post("/trigger", eh.Trigger)

		r.Post("/acknowledgments", ah.AcknowledgeAll)
		r.Post("/acknowledgments/{id}", ah.Acknowledge)
		r.Delete("/acknowledgments", ah.Reset)

		r.Patch("/preferences", ph.Update)

		r.Post("/permissions/push", pm.RequestPush)
		r.Post("/permissions/audio", pm.GrantAudio)

		// Proxied directory service
		r.Get("/items", dh.ListItems)
		r.Get("/users", dh.ListUsers)
		r.Post("/users", dh.CreateUser)
		r.Get("/users/{id}", dh.GetUser)
		r.Put("/users/{id}", dh.UpdateUser)
		r.Delete("/users/{id}", dh.DeleteUser)
	})

	return r
}
