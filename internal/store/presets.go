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
	"github.com/google/uuid"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/logging"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// presetsKey is the well-known key holding the serialized preset list.
const presetsKey = "dlamedica:filter_presets"

// ErrPresetNotFound is returned when no preset carries the requested id.
var ErrPresetNotFound = errors.New("store: filter preset not found")

// FilterPresets persists named filter criteria snapshots as an ordered
// list under a single key.
type FilterPresets struct {
	mu sync.Mutex
	kv KV
}

// NewFilterPresets creates the saved-filter adapter over kv.
func NewFilterPresets(kv KV) *FilterPresets {
	return &FilterPresets{kv: kv}
}

// Save appends a new named preset and returns it with its generated id.
func (p *FilterPresets) Save(name string, criteria models.Criteria) (models.SavedFilter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	preset := models.SavedFilter{
		ID:       uuid.NewString(),
		Name:     name,
		Criteria: criteria,
	}

	presets := append(p.load(), preset)
	if err := p.persist(presets); err != nil {
		return models.SavedFilter{}, err
	}
	return preset, nil
}

// List returns all saved presets in insertion order.
func (p *FilterPresets) List() []models.SavedFilter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load()
}

// Remove deletes the preset with the given id.
func (p *FilterPresets) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	presets := p.load()
	kept := presets[:0]
	for _, preset := range presets {
		if preset.ID != id {
			kept = append(kept, preset)
		}
	}
	if len(kept) == len(presets) {
		return ErrPresetNotFound
	}
	return p.persist(kept)
}

// Apply returns the stored criteria snapshot unchanged, ready for the
// filter composer to consume.
func (p *FilterPresets) Apply(id string) (models.Criteria, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, preset := range p.load() {
		if preset.ID == id {
			return preset.Criteria, nil
		}
	}
	return models.Criteria{}, ErrPresetNotFound
}

// load reads the preset list. A missing or corrupt blob yields an empty
// list; corruption is logged and repaired by the next persist.
func (p *FilterPresets) load() []models.SavedFilter {
	blob, err := p.kv.Get(presetsKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logging.Warn().Err(err).Msg("Reading filter presets failed; treating as empty")
		}
		return nil
	}

	var presets []models.SavedFilter
	if err := json.Unmarshal(blob, &presets); err != nil {
		logging.Warn().Err(err).Msg("Filter preset blob is corrupt; treating as empty")
		return nil
	}
	return presets
}

func (p *FilterPresets) persist(presets []models.SavedFilter) error {
	blob, err := json.Marshal(presets)
	if err != nil {
		return fmt.Errorf("marshal filter presets: %w", err)
	}
	if err := p.kv.Set(presetsKey, blob); err != nil {
		return fmt.Errorf("persist filter presets: %w", err)
	}
	return nil
}
