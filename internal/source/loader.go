// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package source

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/logging"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// Snapshot is an immutable view of the event collection at a point in
// time. Generation increases monotonically with every installed
// snapshot; consumers use it as a cache key component so results
// computed against a superseded snapshot are never served.
type Snapshot struct {
	Events     []models.Event
	Generation uint64
	Degraded   bool
	Warning    string
	FetchedAt  time.Time
}

// Loader owns the current event snapshot and coordinates refreshes
// against a Source. Concurrent refreshes follow last-write-wins: a
// fetch that was started before a newer fetch completed is discarded
// rather than installed.
type Loader struct {
	src Source

	mu   sync.RWMutex
	snap Snapshot

	// generation counts installed snapshots; ticket counts started
	// fetches and orders competing refreshes.
	generation atomic.Uint64
	ticket     atomic.Uint64
	installed  atomic.Uint64
}

// NewLoader returns a Loader seeded with the fallback collection so
// consumers always observe a usable snapshot, even before the first
// refresh completes.
func NewLoader(src Source) *Loader {
	l := &Loader{src: src}
	l.install(Snapshot{
		Events:    Fallback(),
		Degraded:  true,
		Warning:   "serving fallback events: no upstream fetch completed yet",
		FetchedAt: time.Now(),
	}, 0)
	return l
}

// Snapshot returns the current snapshot. The returned slice must be
// treated as read-only; engine operations already copy before mutating.
func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// Refresh fetches the event collection from the source and installs it
// as the new snapshot. On fetch failure the fallback collection is
// installed instead, flagged degraded with a non-fatal warning. A
// refresh that lost the race to a later-started refresh installs
// nothing and reports the winner's outcome as stale.
func (l *Loader) Refresh(ctx context.Context) Snapshot {
	ticket := l.ticket.Add(1)

	events, err := l.src.Fetch(ctx)
	snap := Snapshot{FetchedAt: time.Now()}
	if err != nil {
		logging.Warn().Err(err).Msg("Event source fetch failed, substituting fallback collection")
		snap.Events = Fallback()
		snap.Degraded = true
		snap.Warning = "event source unavailable, showing fallback events: " + err.Error()
	} else {
		snap.Events = events
		logging.Info().Int("events", len(events)).Msg("Event source fetch succeeded")
	}

	if !l.install(snap, ticket) {
		logging.Debug().Uint64("ticket", ticket).Msg("Discarding superseded fetch result")
		return l.Snapshot()
	}
	return snap
}

// install publishes snap as the current snapshot if ticket is not
// older than the newest already-installed fetch. It returns whether
// the snapshot was installed.
func (l *Loader) install(snap Snapshot, ticket uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ticket < l.installed.Load() {
		return false
	}
	l.installed.Store(ticket)
	snap.Generation = l.generation.Add(1)
	l.snap = snap
	return true
}
