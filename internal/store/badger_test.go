// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

func newTestBadger(t *testing.T) *BadgerKV {
	t.Helper()

	kv, err := OpenBadger("")
	if err != nil {
		t.Fatalf("OpenBadger in-memory failed: %v", err)
	}
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return kv
}

func TestBadgerKV_SetGetDelete(t *testing.T) {
	kv := newTestBadger(t)

	if err := kv.Set("k", []byte("value")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("value")) {
		t.Errorf("Get = %q, want %q", got, "value")
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestBadgerKV_GetMissing(t *testing.T) {
	kv := newTestBadger(t)

	if _, err := kv.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestBadgerKV_DeleteMissing(t *testing.T) {
	kv := newTestBadger(t)

	if err := kv.Delete("missing"); err != nil {
		t.Errorf("Deleting an absent key must not fail, got %v", err)
	}
}

func TestBadgerKV_BacksPresetAdapters(t *testing.T) {
	kv := newTestBadger(t)

	presets := NewFilterPresets(kv)
	saved, err := presets.Save("badger-backed", models.Criteria{PriceTier: models.PriceFree})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := NewFilterPresets(kv).Apply(saved.ID); err != nil {
		t.Errorf("Apply through badger failed: %v", err)
	}
}
