// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import "github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"

// pageWindowSize is the maximum number of page links shown by the UI.
const pageWindowSize = 5

// Paginate slices a sorted collection into the requested 1-based page.
//
// The returned current page is clamped to [1, max(1, totalPages)]; the
// clamping is the engine's responsibility, not the caller's, so a filter
// edit that shrinks the collection can never leave the UI on a page that
// no longer exists. An empty collection yields totalPages = 1 and an
// empty page 1, which is a valid state rather than an error.
func Paginate(items []models.Event, page, size int) (pageItems []models.Event, totalPages, current int) {
	if size < 1 {
		size = 1
	}

	totalPages = (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	current = page
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	lo := (current - 1) * size
	hi := lo + size
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	return items[lo:hi], totalPages, current
}

// PageWindow returns the page numbers the pagination control displays:
// at most five, centered on the current page and sliding toward the
// start or end near the boundaries.
func PageWindow(current, total int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	lo := current - pageWindowSize/2
	if lo > total-pageWindowSize+1 {
		lo = total - pageWindowSize + 1
	}
	if lo < 1 {
		lo = 1
	}

	hi := lo + pageWindowSize - 1
	if hi > total {
		hi = total
	}

	window := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		window = append(window, p)
	}
	return window
}
