// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package models

// PriceTier narrows events by cost.
type PriceTier string

const (
	PriceAll  PriceTier = "all"
	PriceFree PriceTier = "free"
	PricePaid PriceTier = "paid"
)

// DateWindow is a relative time-range filter anchored to "today".
// Every window except DateAll excludes events strictly in the past.
type DateWindow string

const (
	DateAll     DateWindow = "all"
	DateWeek    DateWindow = "week"    // 0 <= daysDiff <= 7
	DateMonth   DateWindow = "month"   // 0 <= daysDiff <= 30
	DateQuarter DateWindow = "quarter" // 0 <= daysDiff <= 90
)

// Criteria is the full set of independent filter inputs for a browse.
// The zero value matches everything: an empty Query matches all events
// and empty enum fields behave like their "all" variants.
type Criteria struct {
	// Query is matched case-insensitively as a substring of name or
	// description.
	Query string `json:"query,omitempty"`

	LocationMode LocationMode `json:"locationMode,omitempty"`
	EventType    EventType    `json:"eventType,omitempty"`
	PriceTier    PriceTier    `json:"priceTier,omitempty"`
	DateWindow   DateWindow   `json:"dateWindow,omitempty"`
}

// SavedFilter is a named, persisted snapshot of filter criteria. It is
// created by explicit user action, persisted externally and deleted
// explicitly; there are no other lifecycle transitions.
type SavedFilter struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Criteria Criteria `json:"criteria"`
}
