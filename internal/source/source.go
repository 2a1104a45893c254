// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

// Package source supplies the raw event collection the engine operates
// on. The fetch boundary is the engine's only asynchronous edge: a fetch
// may be pending, succeed or fail, and is never retried automatically.
// A failed fetch substitutes the built-in fallback collection, surfaced
// as a recoverable warning rather than an error.
package source

import (
	"context"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// Source produces one raw ordered snapshot of event records.
type Source interface {
	Fetch(ctx context.Context) ([]models.Event, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) ([]models.Event, error)

// Fetch implements Source.
func (f SourceFunc) Fetch(ctx context.Context) ([]models.Event, error) {
	return f(ctx)
}
