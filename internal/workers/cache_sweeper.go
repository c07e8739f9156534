// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/saas-admin/internal/logger"
)

const defaultSweepInterval = 30 * time.Second

// Sweeper is the part of the query cache the sweeper drives.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

// CacheSweeper periodically removes cache entries nobody has read for
// longer than keepUnusedFor.
type CacheSweeper struct {
	cache         Sweeper
	interval      time.Duration
	keepUnusedFor time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCacheSweeper creates an idle sweeper. A non-positive interval defaults
// to 30 seconds.
func NewCacheSweeper(cache Sweeper, interval, keepUnusedFor time.Duration, logger *logger.Logger) *CacheSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &CacheSweeper{
		cache:         cache,
		interval:      interval,
		keepUnusedFor: keepUnusedFor,
		logger:        logger,
	}
}

// Run stops any previous run and starts sweeping every interval until ctx is
// cancelled or Stop is called.
func (s *CacheSweeper) Run(ctx context.Context) error {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if removed := s.cache.Sweep(s.keepUnusedFor); removed > 0 {
					s.logger.Debug().Int("removed", removed).Msg("cache sweep")
				}
			}
		}
	}()

	s.logger.Info().Dur("interval", s.interval).Dur("keep_unused_for", s.keepUnusedFor).Msg("cache sweeper started")
	return nil
}

// Stop cancels the sweeper and waits for its goroutine to exit.
func (s *CacheSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
