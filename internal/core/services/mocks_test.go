package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BaselineRateRepository ---
type MockBaselineRepository struct {
	mock.Mock
}

func (m *MockBaselineRepository) LoadBaseline(ctx context.Context) (domain.Rates, error) {
	args := m.Called(ctx)
	var rates domain.Rates
	if args.Get(0) != nil {
		rates = args.Get(0).(domain.Rates)
	}
	return rates, args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) LoadAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAll(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

// memoryAccountRepository keeps the last saved collection and records whether two
// SaveAll calls ever overlapped.
type memoryAccountRepository struct {
	mu       sync.Mutex
	saved    []domain.Account
	saves    int
	inFlight atomic.Int32
	overlap  atomic.Bool
	delay    time.Duration
	failWith error
}

func (r *memoryAccountRepository) LoadAll(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Account, len(r.saved))
	for i, a := range r.saved {
		out[i] = a.Clone()
	}
	return out, nil
}

func (r *memoryAccountRepository) SaveAll(ctx context.Context, accounts []domain.Account) error {
	if r.inFlight.Add(1) > 1 {
		r.overlap.Store(true)
	}
	defer r.inFlight.Add(-1)

	if r.delay > 0 {
		time.Sleep(r.delay)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.saved = make([]domain.Account, len(accounts))
	for i, a := range accounts {
		r.saved[i] = a.Clone()
	}
	r.saves++
	return nil
}

func (r *memoryAccountRepository) lastSaved() []domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testBaseline() domain.Rates {
	return domain.Rates{
		"USD": dec("1"),
		"EUR": dec("0.9"),
		"GBP": dec("0.8"),
		"RUB": dec("90"),
	}
}
