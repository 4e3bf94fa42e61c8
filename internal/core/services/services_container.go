package services

import (
	"context"

	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
)

// NewServiceContainer loads the baseline and the account collection and wires the
// services on top of them. Load failures are logged by the stores, which then run
// with empty data; they are not fatal.
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	baseline := NewRateStore()
	_ = baseline.Load(ctx, repos.BaselineRepo)

	accounts := NewAccountStore(repos.AccountRepo)
	_ = accounts.Load(ctx, repos.AccountRepo)

	resolver := NewUserRateResolver(baseline)

	return &portssvc.ServiceContainer{
		User:       NewUserService(accounts, baseline),
		Token:      NewTokenService(cfg),
		Rates:      NewRateService(accounts, resolver, baseline),
		Conversion: NewConversionService(accounts, resolver),
		Baseline:   baseline,
	}
}
