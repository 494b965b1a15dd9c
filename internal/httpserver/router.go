package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"realuseragent/internal/handlers"
	"realuseragent/internal/metrics"
	"realuseragent/internal/middleware"
)

func SetupRouter(r *chi.Mux, baseLogger *zap.Logger, uaHandler *handlers.UserAgentHandler, requestTimeout time.Duration) {

	r.Use(metrics.Middleware)

	// base middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)

	r.Use(middleware.LoggingContext(baseLogger))
	r.Use(middleware.Recoverer())
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/random", uaHandler.Random)
		r.Get("/browsers", uaHandler.Browsers)
		r.Get("/browsers/{name}", uaHandler.Browser)
		r.Get("/records/{category}/{name}", uaHandler.Records)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", metrics.Handler())
}
