// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/logging"
	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// maxResponseBytes caps the decoded payload to keep a misbehaving
// upstream from exhausting memory.
const maxResponseBytes = 16 << 20 // 16MB

// HTTPConfig configures the remote event source.
type HTTPConfig struct {
	// URL is the endpoint returning the event collection as a JSON array.
	URL string

	// Timeout bounds a single fetch end to end.
	Timeout time.Duration

	// Circuit breaker settings. The breaker opens after
	// FailureThreshold consecutive failures and half-opens after
	// BreakerTimeout.
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration
	FailureThreshold   uint32
}

// HTTPSource fetches event records over HTTP behind a circuit breaker,
// so a flapping upstream fails fast instead of stacking slow requests.
type HTTPSource struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]models.Event]
}

// NewHTTPSource creates a breaker-protected HTTP source.
func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}

	settings := gobreaker.Settings{
		Name:        "event-source",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Event source circuit breaker state changed")
		},
	}

	return &HTTPSource{
		url:     cfg.URL,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]models.Event](settings),
	}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Event, error) {
	return s.breaker.Execute(func() ([]models.Event, error) {
		return s.fetch(ctx)
	})
}

func (s *HTTPSource) fetch(ctx context.Context) ([]models.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch events: upstream returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read source response: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode source response: %w", err)
	}
	return events, nil
}

// BreakerState exposes the breaker state for health reporting.
func (s *HTTPSource) BreakerState() string {
	return s.breaker.State().String()
}
