// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/config"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/engine"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/source"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/store"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func testEvents() []models.Event {
	return []models.Event{
		{
			ID: "e1", Name: "Kongres Kardiologiczny", Description: "Choroby układu krążenia",
			Date: "2026-05-03", Time: "09:00",
			Location: "Warszawa", LocationMode: models.LocationInPerson,
			Category: "Kardiologia", EventType: models.TypeConference,
			Price: "Bilet od 299 zł", MaxParticipants: 500, CurrentParticipants: 320,
		},
		{
			ID: "e2", Name: "Webinar: EKG w praktyce", Description: "Interpretacja zapisu EKG",
			Date: "2026-05-05", Time: "18:00",
			Location: "Online", LocationMode: models.LocationOnline,
			Category: "Kardiologia", EventType: models.TypeWebinar,
			Price: "Bezpłatne", IsFree: true, MaxParticipants: 1000, CurrentParticipants: 640,
		},
		{
			ID: "e3", Name: "Konferencja Onkologiczna", Description: "Nowości w onkologii",
			Date: "2026-06-15", Time: "10:00",
			Location: "Kraków", LocationMode: models.LocationInPerson,
			Category: "Onkologia", EventType: models.TypeConference,
			Price: "450 zł", MaxParticipants: 300, CurrentParticipants: 120,
		},
	}
}

// newTestServer wires a full handler stack over an in-memory store and
// a stub source, returning the assembled router.
func newTestServer(t *testing.T, fetch source.SourceFunc) http.Handler {
	t.Helper()

	cfg := config.DefaultForTests()
	loader := source.NewLoader(fetch)
	loader.Refresh(context.Background())

	browser := engine.NewCachedBrowser(cfg.Engine.CacheSize, cfg.Engine.CacheTTL)
	kv := store.NewMemKV()
	h := NewHandler(cfg, loader, browser,
		store.NewFilterPresets(kv), store.NewFavorites(kv),
		func() time.Time { return testNow })
	return NewRouter(cfg, h)
}

func defaultTestServer(t *testing.T) http.Handler {
	return newTestServer(t, func(ctx context.Context) ([]models.Event, error) {
		return testEvents(), nil
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp models.APIResponse
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, resp
}

func dataAs(t *testing.T, resp models.APIResponse, out interface{}) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestEventsBrowse(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp.Status != "success" {
		t.Fatalf("envelope status = %q", resp.Status)
	}

	var result engine.BrowseResult
	dataAs(t, resp, &result)
	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	// Default sort is date ascending.
	if result.Items[0].ID != "e1" || result.Items[1].ID != "e2" || result.Items[2].ID != "e3" {
		t.Errorf("unexpected order: %v", idsOf(result.Items))
	}
	if result.TotalPages != 1 || result.Page != 1 {
		t.Errorf("pagination = page %d of %d, want 1 of 1", result.Page, result.TotalPages)
	}
}

func TestEventsBrowseFilters(t *testing.T) {
	srv := defaultTestServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"free only", "price_tier=free", []string{"e2"}},
		{"online only", "location_mode=online", []string{"e2"}},
		{"conferences", "event_type=conference", []string{"e1", "e3"}},
		{"text search", "q=onkolog", []string{"e3"}},
		{"week window", "date_window=week", []string{"e1", "e2"}},
		{"price desc", "sort=price_desc", []string{"e3", "e1", "e2"}},
		{"all explicit", "price_tier=all&location_mode=all", []string{"e1", "e2", "e3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events?"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			var result engine.BrowseResult
			dataAs(t, resp, &result)
			got := idsOf(result.Items)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEventsBrowseBadParams(t *testing.T) {
	srv := defaultTestServer(t)

	for _, query := range []string{
		"sort=by_vibes",
		"location_mode=hybrid",
		"event_type=hackathon",
		"price_tier=cheap",
		"date_window=decade",
	} {
		rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events?"+query, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, rec.Code)
		}
		if resp.Error == nil || resp.Error.Code != ErrCodeBadRequest {
			t.Errorf("%s: missing BAD_REQUEST error", query)
		}
	}
}

func TestEventsBrowsePageClamping(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events?page=99&page_size=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var result engine.BrowseResult
	dataAs(t, resp, &result)
	if result.Page != 2 || result.TotalPages != 2 {
		t.Errorf("page %d of %d, want clamped to 2 of 2", result.Page, result.TotalPages)
	}
}

func TestEventsPopular(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events/popular?k=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []models.Event
	dataAs(t, resp, &items)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	// e2 has the most participants.
	if items[0].ID != "e2" || items[1].ID != "e1" {
		t.Errorf("order = %v, want [e2 e1]", idsOf(items))
	}
}

func TestEventsSimilar(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events/e1/similar", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []models.Event
	dataAs(t, resp, &items)
	for _, it := range items {
		if it.ID == "e1" {
			t.Error("similar view must exclude the reference event")
		}
	}
	if len(items) == 0 {
		t.Error("expected similar events for e1 (shared category with e2, shared type with e3)")
	}

	rec, _ = doJSON(t, srv, http.MethodGet, "/api/v1/events/e1/similar?prefetch=true", "")
	if rec.Code != http.StatusOK {
		t.Errorf("prefetch status = %d", rec.Code)
	}
}

func TestEventsSimilarUnknownID(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events/nope/similar", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
		t.Error("missing NOT_FOUND error")
	}
}

func TestEventsSuggest(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/events/suggest?q=kardio", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []models.Event
	dataAs(t, resp, &items)
	if len(items) != 1 || items[0].ID != "e1" {
		t.Errorf("suggestions = %v, want [e1]", idsOf(items))
	}

	// An empty query yields an empty list, not an error.
	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/events/suggest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	dataAs(t, resp, &items)
	if len(items) != 0 {
		t.Errorf("empty query returned %v", idsOf(items))
	}
}

func TestEventsRefreshDegraded(t *testing.T) {
	srv := newTestServer(t, func(ctx context.Context) ([]models.Event, error) {
		return nil, errors.New("upstream offline")
	})

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/events/refresh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !resp.Metadata.Degraded {
		t.Error("metadata should flag degraded snapshot")
	}
	if resp.Metadata.Warning == "" {
		t.Error("metadata should carry the fallback warning")
	}

	// Browsing still works off the fallback collection.
	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/events", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("browse status = %d", rec.Code)
	}
	var result engine.BrowseResult
	dataAs(t, resp, &result)
	if result.Total == 0 {
		t.Error("fallback browse returned no events")
	}
}

func TestFiltersLifecycle(t *testing.T) {
	srv := defaultTestServer(t)

	body := `{"name":"Bezpłatne online","criteria":{"priceTier":"free","locationMode":"online"}}`
	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/filters", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var created models.SavedFilter
	dataAs(t, resp, &created)
	if created.ID == "" || created.Name != "Bezpłatne online" {
		t.Fatalf("created = %+v", created)
	}

	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/filters", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []models.SavedFilter
	dataAs(t, resp, &list)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("list = %+v", list)
	}

	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/filters/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("apply status = %d", rec.Code)
	}
	var criteria models.Criteria
	dataAs(t, resp, &criteria)
	if criteria.PriceTier != models.PriceFree || criteria.LocationMode != models.LocationOnline {
		t.Errorf("applied criteria = %+v", criteria)
	}

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/filters/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/filters/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestFiltersCreateValidation(t *testing.T) {
	srv := defaultTestServer(t)

	rec, resp := doJSON(t, srv, http.MethodPost, "/api/v1/filters", `{"criteria":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeValidationFailed {
		t.Error("missing VALIDATION_FAILED error for empty name")
	}

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/v1/filters", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}

func TestFavoritesLifecycle(t *testing.T) {
	srv := defaultTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPut, "/api/v1/favorites/e2", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("put status = %d", rec.Code)
	}
	// Idempotent.
	rec, _ = doJSON(t, srv, http.MethodPut, "/api/v1/favorites/e2", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("second put status = %d", rec.Code)
	}

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/favorites/e2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var status struct {
		Favorite bool `json:"favorite"`
	}
	dataAs(t, resp, &status)
	if !status.Favorite {
		t.Error("e2 should be a favorite")
	}

	rec, resp = doJSON(t, srv, http.MethodGet, "/api/v1/favorites", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var ids []string
	dataAs(t, resp, &ids)
	if len(ids) != 1 || ids[0] != "e2" {
		t.Errorf("favorites = %v, want [e2]", ids)
	}

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/favorites/e2", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	// Removing an absent favorite is a no-op.
	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/favorites/e2", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("second delete status = %d, want 204", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := defaultTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Errorf("live status = %d", rec.Code)
	}

	rec, resp := doJSON(t, srv, http.MethodGet, "/api/v1/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d", rec.Code)
	}
	var data struct {
		Events   int  `json:"events"`
		Degraded bool `json:"degraded"`
	}
	dataAs(t, resp, &data)
	if data.Events != 3 || data.Degraded {
		t.Errorf("ready data = %+v", data)
	}
}

func TestResponseHeaders(t *testing.T) {
	srv := defaultTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func idsOf(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
