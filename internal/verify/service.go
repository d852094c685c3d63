// Package verify holds the loaded record set and answers verification
// queries against it.
package verify

import (
	"context"
	"log/slog"
	"sync"

	"certverify/internal/domain"
	"certverify/internal/ingest"
	"certverify/internal/lookup"
)

// State describes what the service is currently serving.
type State string

const (
	// StateUnloaded means no refresh has completed yet; lookups are refused.
	StateUnloaded State = "unloaded"
	// StateLoaded means the last refresh from the source succeeded.
	StateLoaded State = "loaded"
	// StateDegraded means the source failed and the service is answering
	// from fallback records instead of presenting an empty catalog.
	StateDegraded State = "degraded"
)

// Service owns the in-memory certificate set. Refreshes rebuild the whole
// slice and swap it in atomically; readers never see a partially parsed set.
type Service struct {
	source   ingest.Source
	fallback []domain.Certificate

	mu      sync.RWMutex
	records []domain.Certificate
	state   State
	lastErr error

	refreshMu sync.Mutex // one in-flight refresh at a time
}

// New builds a service over source. fallback may be nil; when set, a failed
// refresh on an unloaded service serves it (degraded) instead of nothing.
func New(source ingest.Source, fallback []domain.Certificate) *Service {
	return &Service{
		source:   source,
		fallback: fallback,
		state:    StateUnloaded,
	}
}

// RefreshStats summarizes what a refresh changed, diffed by certificate
// number against the previously served set.
type RefreshStats struct {
	Total   int
	Added   int
	Removed int
}

// Refresh reloads the record set from the source. On failure the previous
// set keeps serving; if nothing was ever loaded, the fallback set (when
// configured) takes over and the service reports degraded. The source error
// is returned either way so callers can surface it.
func (s *Service) Refresh(ctx context.Context) (RefreshStats, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	records, err := s.source.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		if s.state == StateUnloaded && len(s.fallback) > 0 {
			s.records = s.fallback
			s.state = StateDegraded
			slog.Warn("source load failed, serving fallback records", "source", s.source.Name(), "error", err)
		}
		s.mu.Unlock()
		return RefreshStats{}, err
	}

	s.mu.Lock()
	stats := diff(s.records, records)
	s.records = records
	s.state = StateLoaded
	s.lastErr = nil
	s.mu.Unlock()

	slog.Info("record set refreshed", "source", s.source.Name(), "total", stats.Total, "added", stats.Added, "removed", stats.Removed)
	return stats, nil
}

// Lookup finds a certificate by number. ready is false while the service is
// unloaded, in which case the query was not evaluated.
func (s *Service) Lookup(number string) (cert *domain.Certificate, found bool, ready bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == StateUnloaded {
		return nil, false, false
	}
	cert, found = lookup.ByNumber(s.records, number)
	return cert, found, true
}

// Ready reports whether the service is serving anything at all (loaded
// or degraded).
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state != StateUnloaded
}

// Records returns the currently served set and its state.
func (s *Service) Records() ([]domain.Certificate, State) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.state
}

// LastError reports the most recent refresh failure, nil after a success.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
