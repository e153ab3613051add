// Package quotes keeps a periodically refreshed snapshot of the watchlist
// prices so the dashboard strip does not hit the analytics service on every
// page load.
package quotes

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stockpulse/stockpulse/internal/model"
)

// Fetcher pulls the current watchlist snapshot from the analytics service.
type Fetcher interface {
	StockPrices(ctx context.Context) ([]model.StockSnapshot, error)
}

// Service caches the latest snapshot behind a read lock and refreshes it on
// a cron schedule. When the cache is still cold a read fetches live.
type Service struct {
	fetcher Fetcher
	cron    *cron.Cron

	mu        sync.RWMutex
	snapshot  []model.StockSnapshot
	fetchedAt time.Time
}

func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher: fetcher,
		cron:    cron.New(),
	}
}

// Start primes the cache and registers the refresh job. The schedule uses
// the standard five-field cron format, e.g. "*/5 * * * *".
func (s *Service) Start(ctx context.Context, spec string) error {
	if err := s.refresh(ctx); err != nil {
		slog.Warn("Initial quotes refresh failed, cache starts cold", "error", err)
	}

	_, err := s.cron.AddFunc(spec, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.refresh(refreshCtx); err != nil {
			slog.Error("Quotes refresh failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register quotes refresh: %w", err)
	}

	s.cron.Start()
	slog.Info("Quotes refresher started", "spec", spec)
	return nil
}

// Stop halts the refresh schedule and waits for a running refresh to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("Quotes refresher stopped")
}

// Snapshot returns the cached watchlist prices. A cold cache triggers a live
// fetch; a warm cache never blocks a reader on the network.
func (s *Service) Snapshot(ctx context.Context) ([]model.StockSnapshot, error) {
	s.mu.RLock()
	cached := s.snapshot
	s.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// FetchedAt reports when the snapshot was last refreshed, zero when cold.
func (s *Service) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

func (s *Service) refresh(ctx context.Context) error {
	stocks, err := s.fetcher.StockPrices(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = stocks
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	slog.Debug("Quotes snapshot refreshed", "stocks", len(stocks))
	return nil
}
