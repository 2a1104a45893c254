// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"fmt"
	"testing"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name", "kardiolog", []string{"e1"}},
		{"matches description", "poz", []string{"e2", "e5"}},
		{"case-insensitive", "WEBINAR", []string{"e2", "e5"}},
		{"empty query yields nothing", "", nil},
		{"whitespace query yields nothing", "   \t", nil},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(testEvents, tt.query, 5)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.query, ids(got), tt.want)
			}
		})
	}
}

func TestSuggest_CapsResults(t *testing.T) {
	events := make([]models.Event, 12)
	for i := range events {
		events[i] = models.Event{
			ID:   fmt.Sprintf("s%d", i),
			Name: fmt.Sprintf("Szkolenie %d", i),
		}
	}

	got := Suggest(events, "szkolenie", 5)
	if len(got) != 5 {
		t.Fatalf("Expected 5 suggestions, got %d", len(got))
	}
	// Collection order preserved, no re-ranking.
	want := []string{"s0", "s1", "s2", "s3", "s4"}
	if !equalIDs(ids(got), want) {
		t.Errorf("Suggest order = %v, want %v", ids(got), want)
	}
}

func TestSuggest_DefaultLimit(t *testing.T) {
	events := make([]models.Event, 12)
	for i := range events {
		events[i] = models.Event{
			ID:   fmt.Sprintf("s%d", i),
			Name: fmt.Sprintf("Kurs %d", i),
		}
	}

	if got := Suggest(events, "kurs", 0); len(got) != DefaultSuggestionLimit {
		t.Errorf("Expected default limit of %d, got %d", DefaultSuggestionLimit, len(got))
	}
}
