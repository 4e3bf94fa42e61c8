package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/dto"
)

// BaselineStatusSvc exposes the state of the shared baseline table
type BaselineStatusSvc interface {
	// IsDegraded reports whether the baseline failed to load and is empty.
	IsDegraded() bool
}

// RateReaderSvc defines read operations for an account's rate table
type RateReaderSvc interface {
	// GetEffectiveRates returns the table used for the account's conversions.
	GetEffectiveRates(ctx context.Context, accountID string) (*domain.EffectiveRates, error)
}

// RateAdminSvc defines single-entry mutations of an account's personal rate table.
// Every method persists the whole account collection before reporting success.
type RateAdminSvc interface {
	// SetRate creates or overwrites one entry.
	SetRate(ctx context.Context, accountID string, req dto.UpdateRateRequest) (*domain.EffectiveRates, error)

	// AddRate creates an entry that must not already exist.
	AddRate(ctx context.Context, accountID string, req dto.AddRateRequest) (*domain.EffectiveRates, error)

	// DeleteRate removes an entry. The pivot currency cannot be removed.
	DeleteRate(ctx context.Context, accountID string, req dto.DeleteRateRequest) (*domain.EffectiveRates, error)

	// ResetRates replaces the personal table with a copy of the baseline.
	ResetRates(ctx context.Context, accountID string) (*domain.EffectiveRates, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateAdminSvc
}
