// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/config"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/middleware"
)

// NewRouter assembles the chi router: global middleware stack, the
// /api/v1 surface, and the Prometheus scrape endpoint.
func NewRouter(cfg *config.Config, h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

	if len(cfg.Security.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Security.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
		}

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Events)
			r.Get("/popular", h.EventsPopular)
			r.Get("/recommended", h.EventsRecommended)
			r.Get("/suggest", h.EventsSuggest)
			r.Get("/{id}/similar", h.EventsSimilar)
			r.Post("/refresh", h.EventsRefresh)
		})

		r.Route("/filters", func(r chi.Router) {
			r.Get("/", h.FiltersList)
			r.Post("/", h.FiltersCreate)
			r.Get("/{id}", h.FiltersApply)
			r.Delete("/{id}", h.FiltersDelete)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.FavoritesList)
			r.Get("/{eventID}", h.FavoriteGet)
			r.Put("/{eventID}", h.FavoritePut)
			r.Delete("/{eventID}", h.FavoriteDelete)
		})

		r.Route("/health", func(r chi.Router) {
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
