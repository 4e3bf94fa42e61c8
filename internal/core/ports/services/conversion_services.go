package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/dto"
)

// ConversionSvc converts amounts using the requesting account's effective rates
type ConversionSvc interface {
	// Convert converts req.Amount from req.FromCurrency to req.ToCurrency.
	Convert(ctx context.Context, accountID string, req dto.ConvertRequest) (*domain.ConversionResult, error)
}
