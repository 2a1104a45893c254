// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

// Package models defines the data shapes shared across the event discovery
// engine: the immutable event record, filter criteria, saved filter presets,
// and the standard API response envelope.
//
// Records in this package carry no behavior beyond cheap derived accessors.
// All filtering, sorting and view computation lives in the engine package.
package models
