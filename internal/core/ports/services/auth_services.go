package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT whose subject is the account ID.
	GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error)
}
