// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"math"
	"strings"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// freeKeywords are the case-insensitive markers that classify a price
// text as free. The portal publishes prices in Polish ("Bezpłatne",
// "Udział darmowy") with the occasional English label.
var freeKeywords = []string{"bezpłat", "bezplat", "darmo", "gratis", "free"}

// ParsePrice extracts the numeric value from an event's display price.
//
// Rules, in order:
//   - isFree forces 0 regardless of the text.
//   - a free keyword in the text yields 0.
//   - otherwise the first run of digits is the value ("Bilet od 299 zł"
//     parses as 299).
//   - no digits at all yields +Inf, so the record sorts last ascending
//     and first descending instead of masquerading as cheap.
func ParsePrice(price string, isFree bool) float64 {
	if isFree {
		return 0
	}

	lower := strings.ToLower(price)
	for _, kw := range freeKeywords {
		if strings.Contains(lower, kw) {
			return 0
		}
	}

	value := 0
	inRun := false
	for _, r := range price {
		if r >= '0' && r <= '9' {
			inRun = true
			value = value*10 + int(r-'0')
			continue
		}
		if inRun {
			break
		}
	}
	if !inRun {
		return math.Inf(1)
	}
	return float64(value)
}

// EventPrice is ParsePrice applied to a record.
func EventPrice(e models.Event) float64 {
	return ParsePrice(e.Price, e.IsFree)
}
