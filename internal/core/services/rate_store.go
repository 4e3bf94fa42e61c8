package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
)

// RateStore holds the baseline rate table shared by every account. The table is
// set once by Load and only handed out as copies.
type RateStore struct {
	BaseService
	mu       sync.RWMutex
	baseline domain.Rates
	degraded bool
}

// NewRateStore returns an empty store. Call Load before serving requests.
func NewRateStore() *RateStore {
	return &RateStore{baseline: domain.Rates{}}
}

var _ portssvc.BaselineStatusSvc = (*RateStore)(nil)

// Load reads the baseline from repo. When the source is missing or malformed the
// error is logged, the store keeps an empty baseline and reports itself degraded.
// The returned error lets callers decide whether that is fatal.
func (s *RateStore) Load(ctx context.Context, repo portsrepo.BaselineRateReader) error {
	rates, err := repo.LoadBaseline(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.LogError(ctx, err, "Failed to load baseline rates, continuing with an empty table")
		s.baseline = domain.Rates{}
		s.degraded = true
		return err
	}

	s.baseline = rates.Clone()
	s.degraded = false
	s.LogInfo(ctx, "Baseline rates loaded", slog.Int("currencies", len(rates)))
	return nil
}

// Get returns a copy of the baseline table.
func (s *RateStore) Get() domain.Rates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline.Clone()
}

// IsDegraded reports whether the baseline failed to load.
func (s *RateStore) IsDegraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}
