// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/logging"
)

// favoritesKey is the well-known key holding the favorite event ids.
const favoritesKey = "dlamedica:favorites"

// Favorites persists the flat list of favorite event ids. Membership is
// by value; no ordering is guaranteed.
type Favorites struct {
	mu sync.Mutex
	kv KV
}

// NewFavorites creates the favorites adapter over kv.
func NewFavorites(kv KV) *Favorites {
	return &Favorites{kv: kv}
}

// Add marks an event id as favorite. Adding an id twice is a no-op.
func (f *Favorites) Add(eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.load()
	for _, id := range ids {
		if id == eventID {
			return nil
		}
	}
	return f.persist(append(ids, eventID))
}

// Remove unmarks an event id. Removing an absent id is a no-op.
func (f *Favorites) Remove(eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.load()
	kept := ids[:0]
	for _, id := range ids {
		if id != eventID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return f.persist(kept)
}

// Contains reports whether an event id is marked favorite.
func (f *Favorites) Contains(eventID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range f.load() {
		if id == eventID {
			return true
		}
	}
	return false
}

// List returns all favorite event ids.
func (f *Favorites) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *Favorites) load() []string {
	blob, err := f.kv.Get(favoritesKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logging.Warn().Err(err).Msg("Reading favorites failed; treating as empty")
		}
		return nil
	}

	var ids []string
	if err := json.Unmarshal(blob, &ids); err != nil {
		logging.Warn().Err(err).Msg("Favorites blob is corrupt; treating as empty")
		return nil
	}
	return ids
}

func (f *Favorites) persist(ids []string) error {
	blob, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := f.kv.Set(favoritesKey, blob); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}
