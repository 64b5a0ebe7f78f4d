// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/store"
)

const (
	defaultProbeInterval = 30 * time.Second
	probeTimeout         = 5 * time.Second
)

// HealthProbe pings the store on a ticker and reports the result. Only
// transitions between healthy and unhealthy are logged.
type HealthProbe struct {
	checker  store.HealthChecker
	reporter StatusReporter
	interval time.Duration

	healthy *bool

	logger *logger.Logger
}

// NewHealthProbe builds a probe. reporter may be nil when no gRPC health
// service is running; a non-positive interval falls back to 30s.
func NewHealthProbe(checker store.HealthChecker, reporter StatusReporter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &HealthProbe{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately, then every interval until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) {
	p.probe(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.probe(ctx)
		}
	}
}

func (p *HealthProbe) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := p.checker.Ping(ctx)
	healthy := err == nil

	if p.reporter != nil {
		p.reporter.SetServing(healthy)
	}

	if p.healthy != nil && *p.healthy == healthy {
		return
	}
	p.healthy = &healthy

	if healthy {
		p.logger.Info().Str("func", "*HealthProbe.probe").Msg("store is reachable")
		return
	}
	p.logger.Error().Err(err).Str("func", "*HealthProbe.probe").Msg("store is unreachable")
}
