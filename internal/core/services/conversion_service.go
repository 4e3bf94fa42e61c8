package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/utils/conversion"
)

type conversionService struct {
	BaseService
	accounts *AccountStore
	resolver *UserRateResolver
}

func NewConversionService(accounts *AccountStore, resolver *UserRateResolver) portssvc.ConversionSvc {
	return &conversionService{accounts: accounts, resolver: resolver}
}

var _ portssvc.ConversionSvc = (*conversionService)(nil)

func (s *conversionService) Convert(ctx context.Context, accountID string, req dto.ConvertRequest) (*domain.ConversionResult, error) {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(req.Amount.String())
	if err != nil {
		return nil, err
	}
	from, err := domain.NormalizeCurrencyCode(req.FromCurrency)
	if err != nil {
		return nil, err
	}
	to, err := domain.NormalizeCurrencyCode(req.ToCurrency)
	if err != nil {
		return nil, err
	}

	eff := s.resolver.Resolve(account)
	converted, err := conversion.Convert(amount, from, to, eff.Rates)
	if err != nil {
		s.LogWarn(ctx, err, "Conversion rejected", slog.String("from", from), slog.String("to", to))
		return nil, err
	}

	s.LogDebug(ctx, "Conversion computed",
		slog.String("from", from),
		slog.String("to", to),
		slog.Bool("personal_rates", eff.Overridden))
	return &domain.ConversionResult{
		Amount:          amount,
		FromCurrency:    from,
		ToCurrency:      to,
		ConvertedAmount: converted,
	}, nil
}
