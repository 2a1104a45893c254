// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

// Package store persists user state (saved filter presets and favorite
// event ids) in an external key-value store.
//
// The engine treats the store as an opaque text blob under a well-known
// key: adapters serialize whole lists as JSON and rewrite the key on
// every change. A missing or corrupt blob is treated as an empty list,
// never as a fatal error, so a damaged store degrades to "no presets"
// and repairs itself on the next write.
//
// The KV interface keeps adapters independent of the backing engine:
// production uses BadgerDB, tests use the in-memory implementation.
package store
