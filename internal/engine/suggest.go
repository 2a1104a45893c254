// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"strings"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// DefaultSuggestionLimit caps the incremental search suggestion list.
const DefaultSuggestionLimit = 5

// Suggest returns up to limit events whose name or description contains
// the partial query as a case-insensitive substring, preserving
// collection order without re-ranking.
//
// An empty or whitespace-only query yields an empty list: the search box
// shows no suggestions rather than "everything".
func Suggest(events []models.Event, query string, limit int) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	out := make([]models.Event, 0, limit)
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
