// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.URL == "" {
		// Fallback-only mode is valid; nothing else to check.
		return nil
	}

	u, err := url.Parse(c.Source.URL)
	if err != nil {
		return fmt.Errorf("EVENTS_SOURCE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("EVENTS_SOURCE_URL must use http or https, got %q", u.Scheme)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("EVENTS_SOURCE_TIMEOUT must be positive, got %s", c.Source.Timeout)
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required unless STORE_IN_MEMORY=true")
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.PageSize < 1 {
		return fmt.Errorf("ENGINE_PAGE_SIZE must be at least 1, got %d", c.Engine.PageSize)
	}
	if c.Engine.MaxPageSize < c.Engine.PageSize {
		return fmt.Errorf("ENGINE_MAX_PAGE_SIZE (%d) must not be smaller than ENGINE_PAGE_SIZE (%d)",
			c.Engine.MaxPageSize, c.Engine.PageSize)
	}
	if c.Engine.SuggestionLimit < 1 {
		return fmt.Errorf("ENGINE_SUGGESTION_LIMIT must be at least 1, got %d", c.Engine.SuggestionLimit)
	}
	for name, k := range map[string]int{
		"ENGINE_POPULAR_K":          c.Engine.PopularK,
		"ENGINE_RECOMMENDED_K":      c.Engine.RecommendedK,
		"ENGINE_SIMILAR_K":          c.Engine.SimilarK,
		"ENGINE_SIMILAR_PREFETCH_K": c.Engine.SimilarPrefetchK,
	} {
		if k < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", name, k)
		}
	}
	if c.Engine.CacheSize < 0 {
		return fmt.Errorf("ENGINE_CACHE_SIZE must not be negative, got %d", c.Engine.CacheSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic; got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
