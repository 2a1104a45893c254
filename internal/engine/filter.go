// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"math"
	"strings"
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// Predicate decides inclusion of a single event in a filtered view.
type Predicate func(models.Event) bool

// Compose combines the independent filter criteria into a single
// inclusion predicate. All sub-predicates are ANDed. The zero Criteria
// composes to a match-all predicate.
//
// The date window is anchored on now's calendar date with the time of day
// zeroed; see DaysUntil for the exact day arithmetic.
func Compose(criteria models.Criteria, now time.Time) Predicate {
	preds := make([]Predicate, 0, 5)

	if q := strings.TrimSpace(criteria.Query); q != "" {
		lower := strings.ToLower(q)
		preds = append(preds, func(e models.Event) bool {
			return strings.Contains(strings.ToLower(e.Name), lower) ||
				strings.Contains(strings.ToLower(e.Description), lower)
		})
	}

	if mode := criteria.LocationMode; mode != "" {
		preds = append(preds, func(e models.Event) bool {
			return e.LocationMode == mode
		})
	}

	if et := criteria.EventType; et != "" {
		preds = append(preds, func(e models.Event) bool {
			return e.EventType == et
		})
	}

	// Price tier uses the derived price, so free-keyword prices ("Bezpłatne",
	// "gratis") classify as free even without the explicit flag. Unparseable
	// prices are +Inf and count as paid.
	switch criteria.PriceTier {
	case models.PriceFree:
		preds = append(preds, func(e models.Event) bool { return EventPrice(e) == 0 })
	case models.PricePaid:
		preds = append(preds, func(e models.Event) bool { return EventPrice(e) > 0 })
	}

	if maxDays, constrained := windowSpan(criteria.DateWindow); constrained {
		preds = append(preds, func(e models.Event) bool {
			diff, ok := DaysUntil(e, now)
			// Unparseable dates cannot satisfy a bounded comparison.
			return ok && diff >= 0 && diff <= maxDays
		})
	}

	return func(e models.Event) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Filter returns the events matching the criteria, preserving collection
// order. The result is always a fresh slice; the input is never mutated.
func Filter(events []models.Event, criteria models.Criteria, now time.Time) []models.Event {
	pred := Compose(criteria, now)

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// windowSpan maps a date window to its inclusive day span. The second
// return value is false for unconstrained windows (all / empty).
func windowSpan(w models.DateWindow) (int, bool) {
	switch w {
	case models.DateWeek:
		return 7, true
	case models.DateMonth:
		return 30, true
	case models.DateQuarter:
		return 90, true
	default:
		return 0, false
	}
}

// DaysUntil computes floor((eventDate - today) / 1 day) using calendar
// dates with the time of day zeroed. Negative values mean the event is in
// the past. The second return value is false when the event date does not
// parse; such events count as far future.
func DaysUntil(e models.Event, now time.Time) (int, bool) {
	day, ok := e.Day(now.Location())
	if !ok {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Rounding absorbs the one-hour skew of DST transition days.
	return int(math.Round(day.Sub(today).Hours() / 24)), true
}

// IsPast reports whether the event is strictly before now's calendar
// date. Unparseable dates classify as far future, never past.
func IsPast(e models.Event, now time.Time) bool {
	diff, ok := DaysUntil(e, now)
	return ok && diff < 0
}
