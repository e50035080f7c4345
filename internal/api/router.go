package api

import (
	"net/http"

	_ "ratebank/docs"
	"ratebank/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

const pairPattern = "/rates/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}"

// NewRouter mounts the rate API under /api/v1. metricsHandler is optional.
func NewRouter(rateHandler *handler.Handler, metricsHandler http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", rateHandler.GetRates)
		r.Get(pairPattern, rateHandler.GetRate)
		r.Put(pairPattern, rateHandler.PutRate)
		r.Post("/exchange", rateHandler.Exchange)
		r.Get("/currencies", rateHandler.GetCurrencies)
	})
	return router
}
