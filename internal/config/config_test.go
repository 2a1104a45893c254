// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8480 {
		t.Errorf("default port = %d, want 8480", cfg.Server.Port)
	}
	if cfg.Engine.PageSize != 9 {
		t.Errorf("default page size = %d, want 9", cfg.Engine.PageSize)
	}
	if cfg.Engine.SuggestionLimit != 5 {
		t.Errorf("default suggestion limit = %d, want 5", cfg.Engine.SuggestionLimit)
	}
	if cfg.Engine.PopularK != 3 || cfg.Engine.RecommendedK != 3 || cfg.Engine.SimilarK != 3 {
		t.Error("default view k values should all be 3")
	}
	if cfg.Source.BreakerFailureThreshold != 3 {
		t.Errorf("default breaker threshold = %d, want 3", cfg.Source.BreakerFailureThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("EVENTS_SOURCE_URL", "https://api.dlamedica.pl/events")
	t.Setenv("ENGINE_PAGE_SIZE", "12")
	t.Setenv("CORS_ORIGINS", "https://dlamedica.pl, https://staging.dlamedica.pl")
	t.Setenv("STORE_IN_MEMORY", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("port = %d, want 9191", cfg.Server.Port)
	}
	if cfg.Source.URL != "https://api.dlamedica.pl/events" {
		t.Errorf("source url = %q", cfg.Source.URL)
	}
	if cfg.Engine.PageSize != 12 {
		t.Errorf("page size = %d, want 12", cfg.Engine.PageSize)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://staging.dlamedica.pl" {
		t.Errorf("cors origins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadIgnoresUnmappedEnv(t *testing.T) {
	t.Setenv("STORE_IN_MEMORY", "true")
	t.Setenv("RANDOM_UNRELATED_VAR", "surprise")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8480 {
		t.Errorf("unmapped env must not disturb defaults, port = %d", cfg.Server.Port)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad source scheme", func(c *Config) { c.Source.URL = "ftp://example.com/events" }, "http or https"},
		{"missing store path", func(c *Config) { c.Store.Path = ""; c.Store.InMemory = false }, "STORE_PATH"},
		{"zero page size", func(c *Config) { c.Engine.PageSize = 0 }, "ENGINE_PAGE_SIZE"},
		{"max below default", func(c *Config) { c.Engine.MaxPageSize = 1 }, "ENGINE_MAX_PAGE_SIZE"},
		{"zero popular k", func(c *Config) { c.Engine.PopularK = 0 }, "ENGINE_POPULAR_K"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidateFallbackOnlyMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Source.URL = ""
	cfg.Source.Timeout = 0 // irrelevant without a URL
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback-only mode must validate: %v", err)
	}
}

func TestDefaultForTests(t *testing.T) {
	cfg := DefaultForTests()
	if !cfg.Store.InMemory {
		t.Error("test config must use the in-memory store")
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("test config must disable rate limiting")
	}
	if cfg.Engine.CacheTTL < time.Minute {
		t.Errorf("cache TTL = %s, expected the production default", cfg.Engine.CacheTTL)
	}
}
