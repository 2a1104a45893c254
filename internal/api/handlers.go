// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/config"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/engine"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/logging"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/metrics"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/source"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/store"
)

// Handler exposes the discovery engine over HTTP. All engine calls
// receive an explicit "now" from the handler's clock, so tests can pin
// time and the engine stays free of wall-clock reads.
type Handler struct {
	cfg       *config.Config
	loader    *source.Loader
	browser   *engine.CachedBrowser
	presets   *store.FilterPresets
	favorites *store.Favorites
	clock     func() time.Time
}

// NewHandler wires the handler's dependencies. A nil clock defaults to
// time.Now.
func NewHandler(cfg *config.Config, loader *source.Loader, browser *engine.CachedBrowser, presets *store.FilterPresets, favorites *store.Favorites, clock func() time.Time) *Handler {
	if clock == nil {
		clock = time.Now
	}
	return &Handler{
		cfg:       cfg,
		loader:    loader,
		browser:   browser,
		presets:   presets,
		favorites: favorites,
		clock:     clock,
	}
}

// snapshotMeta builds the response metadata for a snapshot-backed view.
func snapshotMeta(snap source.Snapshot, cached bool) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now(),
		Cached:    cached,
		Degraded:  snap.Degraded,
		Warning:   snap.Warning,
	}
}

// Events handles GET /api/v1/events: the full browse pipeline.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	req, err := parseBrowseRequest(r, h.cfg.Engine.PageSize, h.cfg.Engine.MaxPageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	snap := h.loader.Snapshot()
	result, cached := h.browser.Browse(snap.Generation, snap.Events, req, h.clock())
	metrics.RecordBrowseCache(cached)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     result,
		Metadata: snapshotMeta(snap, cached),
	})
}

// EventsPopular handles GET /api/v1/events/popular.
func (h *Handler) EventsPopular(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()
	k := parseViewK(r, h.cfg.Engine.PopularK)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     engine.Popular(snap.Events, h.clock(), k),
		Metadata: snapshotMeta(snap, false),
	})
}

// EventsRecommended handles GET /api/v1/events/recommended.
func (h *Handler) EventsRecommended(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()
	k := parseViewK(r, h.cfg.Engine.RecommendedK)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     engine.Recommended(snap.Events, h.clock(), k),
		Metadata: snapshotMeta(snap, false),
	})
}

// EventsSimilar handles GET /api/v1/events/{id}/similar.
func (h *Handler) EventsSimilar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap := h.loader.Snapshot()

	var ref *models.Event
	for i := range snap.Events {
		if snap.Events[i].ID == id {
			ref = &snap.Events[i]
			break
		}
	}
	if ref == nil {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "event not found", nil)
		return
	}

	// The events page prefetches more cards than it shows, so hover
	// states render without a second round trip.
	defaultK := h.cfg.Engine.SimilarK
	if r.URL.Query().Get("prefetch") == "true" {
		defaultK = h.cfg.Engine.SimilarPrefetchK
	}

	k := parseViewK(r, defaultK)
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     engine.Similar(snap.Events, *ref, h.clock(), k),
		Metadata: snapshotMeta(snap, false),
	})
}

// EventsSuggest handles GET /api/v1/events/suggest?q=.
func (h *Handler) EventsSuggest(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()
	limit := getIntParam(r, "limit", h.cfg.Engine.SuggestionLimit)
	if limit < 1 || limit > h.cfg.Engine.MaxPageSize {
		limit = h.cfg.Engine.SuggestionLimit
	}

	suggestions := engine.Suggest(snap.Events, r.URL.Query().Get("q"), limit)
	if suggestions == nil {
		suggestions = []models.Event{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     suggestions,
		Metadata: snapshotMeta(snap, false),
	})
}

// EventsRefresh handles POST /api/v1/events/refresh: a forced re-fetch
// from the upstream source. Concurrent refreshes are safe; a superseded
// fetch result is discarded by the loader.
func (h *Handler) EventsRefresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.loader.Refresh(r.Context())
	metrics.RecordSourceFetch(time.Since(start), len(snap.Events), snap.Generation, snap.Degraded)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"events":     len(snap.Events),
			"generation": snap.Generation,
			"degraded":   snap.Degraded,
		},
		Metadata: snapshotMeta(snap, false),
	})
}

// FiltersList handles GET /api/v1/filters.
func (h *Handler) FiltersList(w http.ResponseWriter, r *http.Request) {
	presets := h.presets.List()
	if presets == nil {
		presets = []models.SavedFilter{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     presets,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// FiltersCreate handles POST /api/v1/filters.
func (h *Handler) FiltersCreate(w http.ResponseWriter, r *http.Request) {
	var req createFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	preset, err := h.presets.Save(req.Name, req.Criteria)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to save filter", err)
		return
	}
	metrics.RecordStoreOperation("filter_presets", "save")

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status:   "success",
		Data:     preset,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// FiltersApply handles GET /api/v1/filters/{id}: resolving a saved
// preset back into criteria the client can browse with.
func (h *Handler) FiltersApply(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	criteria, err := h.presets.Apply(id)
	if err != nil {
		if errors.Is(err, store.ErrPresetNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "filter preset not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to apply filter", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     criteria,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// FiltersDelete handles DELETE /api/v1/filters/{id}.
func (h *Handler) FiltersDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.presets.Remove(id); err != nil {
		if errors.Is(err, store.ErrPresetNotFound) {
			respondError(w, http.StatusNotFound, ErrCodeNotFound, "filter preset not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to delete filter", err)
		return
	}
	metrics.RecordStoreOperation("filter_presets", "remove")

	w.WriteHeader(http.StatusNoContent)
}

// FavoritesList handles GET /api/v1/favorites.
func (h *Handler) FavoritesList(w http.ResponseWriter, r *http.Request) {
	ids := h.favorites.List()
	if ids == nil {
		ids = []string{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     ids,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// FavoriteGet handles GET /api/v1/favorites/{eventID}.
func (h *Handler) FavoriteGet(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"eventId":  eventID,
			"favorite": h.favorites.Contains(eventID),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// FavoritePut handles PUT /api/v1/favorites/{eventID}. Marking an
// already-favorited event is a no-op, not an error.
func (h *Handler) FavoritePut(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	if err := h.favorites.Add(eventID); err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to save favorite", err)
		return
	}
	metrics.RecordStoreOperation("favorites", "add")

	w.WriteHeader(http.StatusNoContent)
}

// FavoriteDelete handles DELETE /api/v1/favorites/{eventID}. Removing
// an absent favorite is a no-op.
func (h *Handler) FavoriteDelete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	if err := h.favorites.Remove(eventID); err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to remove favorite", err)
		return
	}
	metrics.RecordStoreOperation("favorites", "remove")

	w.WriteHeader(http.StatusNoContent)
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "alive"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles GET /api/v1/health/ready. The service is ready as
// soon as a snapshot exists; a degraded (fallback) snapshot is still
// ready, it just carries a warning.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snap := h.loader.Snapshot()

	data := map[string]interface{}{
		"status":     "ready",
		"events":     len(snap.Events),
		"generation": snap.Generation,
		"degraded":   snap.Degraded,
	}
	if snap.Degraded {
		logging.Debug().Msg("Readiness probe served from degraded snapshot")
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: snapshotMeta(snap, false),
	})
}
