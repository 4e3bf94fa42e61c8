package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
)

// rateService reads and edits an account's personal rate table. Every edit runs
// through AccountStore.Mutate, so it is persisted before it becomes visible.
type rateService struct {
	BaseService
	accounts *AccountStore
	resolver *UserRateResolver
	baseline *RateStore
}

func NewRateService(accounts *AccountStore, resolver *UserRateResolver, baseline *RateStore) portssvc.RateSvcFacade {
	return &rateService{accounts: accounts, resolver: resolver, baseline: baseline}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) GetEffectiveRates(ctx context.Context, accountID string) (*domain.EffectiveRates, error) {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	eff := s.resolver.Resolve(account)
	return &eff, nil
}

func (s *rateService) SetRate(ctx context.Context, accountID string, req dto.UpdateRateRequest) (*domain.EffectiveRates, error) {
	code, err := domain.NormalizeCurrencyCode(req.Currency)
	if err != nil {
		return nil, err
	}
	rate, err := domain.ParseRate(req.Rate.String())
	if err != nil {
		s.LogWarn(ctx, err, "Rejected rate update", slog.String("currency", code))
		return nil, err
	}
	if domain.IsPivot(code) && !rate.Equal(domain.PivotRate) {
		return nil, fmt.Errorf("%w: %s must stay at %s", apperrors.ErrProtectedCurrency, code, domain.PivotRate)
	}

	return s.mutate(ctx, accountID, "Rate updated", slog.String("currency", code), func(table domain.Rates) error {
		table[code] = rate
		return nil
	})
}

func (s *rateService) AddRate(ctx context.Context, accountID string, req dto.AddRateRequest) (*domain.EffectiveRates, error) {
	code, err := domain.NormalizeCurrencyCode(req.NewCurrency)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, accountID, "Currency added", slog.String("currency", code), func(table domain.Rates) error {
		if _, exists := table[code]; exists {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateCurrency, code)
		}
		rate, err := domain.ParseRate(req.NewRate.String())
		if err != nil {
			return err
		}
		if domain.IsPivot(code) && !rate.Equal(domain.PivotRate) {
			return fmt.Errorf("%w: %s must stay at %s", apperrors.ErrProtectedCurrency, code, domain.PivotRate)
		}
		table[code] = rate
		return nil
	})
}

func (s *rateService) DeleteRate(ctx context.Context, accountID string, req dto.DeleteRateRequest) (*domain.EffectiveRates, error) {
	code, err := domain.NormalizeCurrencyCode(req.CurrencyToDelete)
	if err != nil {
		return nil, err
	}
	// The pivot is protected whether or not the table lists it.
	if domain.IsPivot(code) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrProtectedCurrency, code)
	}

	return s.mutate(ctx, accountID, "Currency deleted", slog.String("currency", code), func(table domain.Rates) error {
		if _, exists := table[code]; !exists {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
		delete(table, code)
		return nil
	})
}

func (s *rateService) ResetRates(ctx context.Context, accountID string) (*domain.EffectiveRates, error) {
	return s.mutate(ctx, accountID, "Rates reset to baseline", slog.Bool("degraded_baseline", s.baseline.IsDegraded()), func(table domain.Rates) error {
		for code := range table {
			delete(table, code)
		}
		for code, rate := range s.baseline.Get() {
			table[code] = rate
		}
		return nil
	})
}

// mutate edits the account's personal table, materialising it from the baseline
// first when the account still inherits, and returns the committed result.
func (s *rateService) mutate(ctx context.Context, accountID, msg string, attr slog.Attr, edit func(domain.Rates) error) (*domain.EffectiveRates, error) {
	updated, err := s.accounts.Mutate(ctx, accountID, func(account *domain.Account) error {
		table := s.resolver.PersonalTable(*account)
		if err := edit(table); err != nil {
			return err
		}
		account.PersonalRates = domain.OverriddenRates(table)
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, err, "Rate change not applied", attr)
		return nil, err
	}

	s.LogInfo(ctx, msg, attr)
	eff := s.resolver.Resolve(updated)
	return &eff, nil
}
