// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// Default result sizes for the derived views.
const (
	// DefaultTopK is the display size of the popular, recommended and
	// similar views.
	DefaultTopK = 3

	// SimilarPrefetchK is the similar-view size used when prefetching
	// beyond the visible cards.
	SimilarPrefetchK = 6
)

// Popular ranks non-past events by current participant count descending,
// ties broken by date ascending, and returns the top k (DefaultTopK when
// k is not positive). Derived views never fabricate ids; every element
// is an event from the input collection.
func Popular(events []models.Event, now time.Time, k int) []models.Event {
	out := upcoming(events, now)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CurrentParticipants != b.CurrentParticipants {
			return a.CurrentParticipants > b.CurrentParticipants
		}
		if cmp := compareDates(a, b); cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})

	return topK(out, k)
}

// Recommended returns the first k non-past events in the caller's
// current order. It represents "what's coming up that matches current
// interest" rather than a separate ranking, so the input order (the
// caller's active sort) is preserved.
func Recommended(events []models.Event, now time.Time, k int) []models.Event {
	return topK(upcoming(events, now), k)
}

// Similar returns up to k non-past events related to ref: sharing its
// event type or category, excluding ref itself by id, ordered by date
// ascending.
func Similar(events []models.Event, ref models.Event, now time.Time, k int) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.ID == ref.ID {
			continue
		}
		if e.EventType != ref.EventType && !sameCategory(e, ref) {
			continue
		}
		if IsPast(e, now) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if cmp := compareDates(out[i], out[j]); cmp != 0 {
			return cmp < 0
		}
		return out[i].ID < out[j].ID
	})

	return topK(out, k)
}

// upcoming filters to non-past events, preserving order. Unparseable
// dates classify as far future and are therefore kept.
func upcoming(events []models.Event, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !IsPast(e, now) {
			out = append(out, e)
		}
	}
	return out
}

func sameCategory(a, b models.Event) bool {
	return a.Category != "" && strings.EqualFold(a.Category, b.Category)
}

func topK(events []models.Event, k int) []models.Event {
	if k <= 0 {
		k = DefaultTopK
	}
	if k > len(events) {
		k = len(events)
	}
	return events[:k]
}
