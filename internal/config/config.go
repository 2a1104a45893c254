// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

// Package config loads and validates application configuration using
// Koanf v2 with layered sources: built-in defaults, an optional YAML file
// and environment variables (highest priority).
package config

import (
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/engine"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Source   SourceConfig   `koanf:"source"`
	Store    StoreConfig    `koanf:"store"`
	Engine   EngineConfig   `koanf:"engine"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SourceConfig configures the upstream event record source.
type SourceConfig struct {
	// URL is the endpoint returning the raw event collection as a JSON
	// array. When empty, the built-in fallback collection is the only
	// source of events.
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`

	// FetchOnStartup performs an initial load before the server starts
	// accepting requests.
	FetchOnStartup bool `koanf:"fetch_on_startup"`

	// Circuit breaker settings for the fetch boundary.
	BreakerMaxRequests      uint32        `koanf:"breaker_max_requests"`
	BreakerInterval         time.Duration `koanf:"breaker_interval"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
}

// StoreConfig configures the persisted key-value store backing saved
// filters and favorites.
type StoreConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory runs the store without persistence. Intended for
	// development and tests.
	InMemory bool `koanf:"in_memory"`
}

// EngineConfig carries the discovery engine defaults and bounds.
type EngineConfig struct {
	PageSize    int `koanf:"page_size"`
	MaxPageSize int `koanf:"max_page_size"`

	SuggestionLimit  int `koanf:"suggestion_limit"`
	PopularK         int `koanf:"popular_k"`
	RecommendedK     int `koanf:"recommended_k"`
	SimilarK         int `koanf:"similar_k"`
	SimilarPrefetchK int `koanf:"similar_prefetch_k"`

	// Browse memoization cache.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig carries CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DefaultForTests returns the built-in defaults adjusted for test
// harnesses: in-memory store and rate limiting off.
func DefaultForTests() *Config {
	cfg := defaultConfig()
	cfg.Store.InMemory = true
	cfg.Security.RateLimitDisabled = true
	return cfg
}

// defaultConfig returns a Config with all sensible default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8480,
			Timeout: 30 * time.Second,
		},
		Source: SourceConfig{
			URL:                     "",
			Timeout:                 10 * time.Second,
			FetchOnStartup:          true,
			BreakerMaxRequests:      1,
			BreakerInterval:         time.Minute,
			BreakerTimeout:          30 * time.Second,
			BreakerFailureThreshold: 3,
		},
		Store: StoreConfig{
			Path:     "/data/dlamedica-events",
			InMemory: false,
		},
		Engine: EngineConfig{
			PageSize:         9,
			MaxPageSize:      100,
			SuggestionLimit:  engine.DefaultSuggestionLimit,
			PopularK:         engine.DefaultTopK,
			RecommendedK:     engine.DefaultTopK,
			SimilarK:         engine.DefaultTopK,
			SimilarPrefetchK: engine.SimilarPrefetchK,
			CacheSize:        512,
			CacheTTL:         5 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}
