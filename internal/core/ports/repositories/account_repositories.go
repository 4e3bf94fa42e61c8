package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// AccountReader defines read operations for the account collection
type AccountReader interface {
	// LoadAll reads every account, including personal rate tables. A missing or
	// malformed store is reported as apperrors.ErrConfigLoad.
	LoadAll(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for the account collection
type AccountWriter interface {
	// SaveAll durably replaces the stored collection with accounts. The write is
	// atomic with respect to readers: on failure the previous contents remain intact
	// and apperrors.ErrPersistenceWrite is returned.
	SaveAll(ctx context.Context, accounts []domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
