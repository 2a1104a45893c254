// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/cache"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// BrowseRequest is the full input tuple of one browse computation.
type BrowseRequest struct {
	Criteria models.Criteria `json:"criteria"`
	Sort     SortMode        `json:"sort"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// BrowseResult is what the events page renders: the visible slice plus
// the pagination metadata.
type BrowseResult struct {
	Items []models.Event `json:"items"`

	// Total is the filtered count before pagination.
	Total int `json:"total"`

	// Page is the clamped current page actually served.
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	PageWindow []int `json:"pageWindow"`
}

// Browse runs the full pipeline: filter by criteria, sort by mode, clamp
// the page and paginate. It is pure and deterministic; re-running with
// identical inputs produces an identical result.
func Browse(events []models.Event, req BrowseRequest, now time.Time) BrowseResult {
	filtered := Filter(events, req.Criteria, now)
	sorted := Sort(filtered, req.Sort)

	items, totalPages, current := Paginate(sorted, req.Page, req.PageSize)

	return BrowseResult{
		Items:      items,
		Total:      len(sorted),
		Page:       current,
		TotalPages: totalPages,
		PageWindow: PageWindow(current, totalPages),
	}
}

// CachedBrowser memoizes Browse results in an LRU cache keyed on the
// input tuple. Because Browse is referentially transparent, the cache is
// purely an optimization: a hit returns exactly what recomputation
// would.
//
// The collection itself is identified by the generation number assigned
// by the source loader, so a new snapshot naturally invalidates all
// prior entries without an explicit flush.
type CachedBrowser struct {
	results *cache.LRU[BrowseResult]
}

// NewCachedBrowser creates a browser with the given cache capacity and
// entry TTL.
func NewCachedBrowser(capacity int, ttl time.Duration) *CachedBrowser {
	return &CachedBrowser{results: cache.NewLRU[BrowseResult](capacity, ttl)}
}

// Browse computes (or recalls) the browse result for the snapshot
// identified by generation. The second return value reports a cache hit.
func (b *CachedBrowser) Browse(generation uint64, events []models.Event, req BrowseRequest, now time.Time) (BrowseResult, bool) {
	key := browseKey(generation, req, now)

	if result, ok := b.results.Get(key); ok {
		return result, true
	}

	result := Browse(events, req, now)
	b.results.Add(key, result)
	return result, false
}

// Stats exposes the underlying cache counters.
func (b *CachedBrowser) Stats() (hits, misses int64) {
	return b.results.Stats()
}

// browseKey fingerprints the browse input tuple. Only now's calendar
// date participates: the pipeline's date arithmetic zeroes the time of
// day, so two calls on the same day are identical inputs.
func browseKey(generation uint64, req BrowseRequest, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(generation, 10))
	sb.WriteByte('|')
	sb.WriteString(now.Format(models.DateLayout))
	sb.WriteByte('|')
	sb.WriteString(string(req.Sort))
	sb.WriteByte('|')
	fmt.Fprintf(&sb, "%d|%d|", req.Page, req.PageSize)

	c := req.Criteria
	sb.WriteString(strings.ToLower(c.Query))
	fmt.Fprintf(&sb, "|%s|%s|%s|%s", c.LocationMode, c.EventType, c.PriceTier, c.DateWindow)

	return sb.String()
}
