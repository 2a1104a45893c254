// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// SortMode identifies one of the supported orderings.
type SortMode string

const (
	SortDateAsc          SortMode = "date_asc"
	SortDateDesc         SortMode = "date_desc"
	SortPriceAsc         SortMode = "price_asc"
	SortPriceDesc        SortMode = "price_desc"
	SortParticipantsAsc  SortMode = "participants_asc"
	SortParticipantsDesc SortMode = "participants_desc"
	SortNameAsc          SortMode = "name_asc"
	SortNameDesc         SortMode = "name_desc"
)

// DefaultSortMode is applied when the caller supplies no sort token.
const DefaultSortMode = SortDateAsc

// ParseSortMode validates a sort-mode token. Empty input maps to the
// default mode.
func ParseSortMode(token string) (SortMode, error) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(token))); m {
	case "":
		return DefaultSortMode, nil
	case SortDateAsc, SortDateDesc, SortPriceAsc, SortPriceDesc,
		SortParticipantsAsc, SortParticipantsDesc, SortNameAsc, SortNameDesc:
		return m, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q", token)
	}
}

// Comparator is a deterministic two-argument ordering function. It
// returns a negative value when a orders before b, positive when after,
// and never leaves a tie unresolved for events with distinct ids.
type Comparator func(a, b models.Event) int

// ComparatorFor maps a sort mode to its comparator. Every comparator
// falls back to the id as the final tie-break, making the order total.
// Unknown modes fall back to the default mode.
//
// The returned comparator owns its collator and must not be shared
// across goroutines; obtain a fresh one per sort.
func ComparatorFor(mode SortMode) Comparator {
	var key Comparator

	switch mode {
	case SortDateDesc:
		key = func(a, b models.Event) int { return -compareDates(a, b) }
	case SortPriceAsc:
		key = func(a, b models.Event) int { return compareFloats(EventPrice(a), EventPrice(b)) }
	case SortPriceDesc:
		key = func(a, b models.Event) int { return -compareFloats(EventPrice(a), EventPrice(b)) }
	case SortParticipantsAsc:
		key = func(a, b models.Event) int { return compareInts(a.CurrentParticipants, b.CurrentParticipants) }
	case SortParticipantsDesc:
		key = func(a, b models.Event) int { return -compareInts(a.CurrentParticipants, b.CurrentParticipants) }
	case SortNameAsc:
		c := newNameCollator()
		key = func(a, b models.Event) int { return c.CompareString(a.Name, b.Name) }
	case SortNameDesc:
		c := newNameCollator()
		key = func(a, b models.Event) int { return -c.CompareString(a.Name, b.Name) }
	default: // SortDateAsc and unknown tokens
		key = compareDates
	}

	return func(a, b models.Event) int {
		if cmp := key(a, b); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.ID, b.ID)
	}
}

// Sort returns a sorted copy of events in the given mode. The input
// slice is never reordered.
func Sort(events []models.Event, mode SortMode) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)
	cmp := ComparatorFor(mode)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})
	return out
}

// newNameCollator builds the locale-aware collator for name ordering.
// The portal's content is Polish; byte-wise comparison would order "ł"
// after "z".
func newNameCollator() *collate.Collator {
	return collate.New(language.Polish, collate.IgnoreCase)
}

// Sorting compares calendar dates only, so the location is irrelevant;
// UTC keeps the comparison allocation-free and deterministic.
var timeUTC = time.UTC

// compareDates orders by calendar date ascending, ties broken by the
// time string lexically. Unparseable dates order after every parseable
// one (far future); two unparseable dates tie on the time string.
func compareDates(a, b models.Event) int {
	dayA, okA := a.Day(timeUTC)
	dayB, okB := b.Day(timeUTC)

	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB:
		if dayA.Before(dayB) {
			return -1
		}
		if dayA.After(dayB) {
			return 1
		}
	}
	return strings.Compare(a.Time, b.Time)
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
