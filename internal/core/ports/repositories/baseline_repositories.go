package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// BaselineRateReader defines read access to the shared baseline rate table.
type BaselineRateReader interface {
	// LoadBaseline reads the baseline table. A missing or malformed source is
	// reported as apperrors.ErrConfigLoad.
	LoadBaseline(ctx context.Context) (domain.Rates, error)
}

// BaselineRateRepositoryFacade combines all baseline-related repository interfaces
type BaselineRateRepositoryFacade interface {
	BaselineRateReader
}
