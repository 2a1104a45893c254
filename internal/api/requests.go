// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/engine"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// parseBrowseRequest translates the events listing query string into an
// engine.BrowseRequest. Enum parameters accept their literal values plus
// "all"/empty for no filtering; anything else is a client error. Page
// bounds are NOT validated here: clamping out-of-range pages is the
// engine's job.
func parseBrowseRequest(r *http.Request, defaultPageSize, maxPageSize int) (engine.BrowseRequest, error) {
	q := r.URL.Query()

	var req engine.BrowseRequest
	req.Criteria.Query = q.Get("q")

	mode, err := parseEnumParam(q.Get("location_mode"), "location_mode",
		string(models.LocationOnline), string(models.LocationInPerson))
	if err != nil {
		return req, err
	}
	req.Criteria.LocationMode = models.LocationMode(mode)

	typ, err := parseEnumParam(q.Get("event_type"), "event_type",
		string(models.TypeConference), string(models.TypeWebinar))
	if err != nil {
		return req, err
	}
	req.Criteria.EventType = models.EventType(typ)

	tier, err := parseEnumParam(q.Get("price_tier"), "price_tier",
		string(models.PriceFree), string(models.PricePaid))
	if err != nil {
		return req, err
	}
	req.Criteria.PriceTier = models.PriceTier(tier)

	window, err := parseEnumParam(q.Get("date_window"), "date_window",
		string(models.DateWeek), string(models.DateMonth), string(models.DateQuarter))
	if err != nil {
		return req, err
	}
	req.Criteria.DateWindow = models.DateWindow(window)

	sort, err := engine.ParseSortMode(q.Get("sort"))
	if err != nil {
		return req, err
	}
	req.Sort = sort

	req.Page = getIntParam(r, "page", 1)
	req.PageSize = getIntParam(r, "page_size", defaultPageSize)
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	return req, nil
}

// parseEnumParam accepts empty and "all" as "no filter" and otherwise
// requires one of the allowed literals.
func parseEnumParam(raw, name string, allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || v == "all" {
		return "", nil
	}
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q, expected one of: %s", name, raw, strings.Join(allowed, ", "))
}

// parseViewK bounds the k parameter of the derived views.
func parseViewK(r *http.Request, def int) int {
	const maxK = 24
	k := getIntParam(r, "k", def)
	if k < 1 {
		return def
	}
	if k > maxK {
		return maxK
	}
	return k
}

// createFilterRequest is the POST /filters payload.
type createFilterRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=120"`
	Criteria models.Criteria `json:"criteria"`
}
