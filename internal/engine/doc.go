// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

// Package engine implements the event discovery pipeline: filtering,
// sorting, pagination and the derived views (popular, recommended,
// similar, search suggestions) consumed by the events browsing page.
//
// Every function in this package is pure: it takes an immutable snapshot
// of the event collection plus explicit parameters (including "now" as a
// time.Time) and returns derived collections without I/O, without reading
// the ambient clock and without mutating its inputs. Identical inputs
// always produce identical outputs, which makes results safe to memoize
// keyed on the input tuple (see CachedBrowser).
//
// Malformed records are absorbed, never rejected: unparseable prices sort
// as most expensive, unparseable dates classify as far future, and
// participant-count violations pass through untouched.
package engine
