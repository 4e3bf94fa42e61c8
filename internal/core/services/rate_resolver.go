package services

import "github.com/SscSPs/currency_converter_app/internal/core/domain"

// UserRateResolver decides which table answers a request for an account.
type UserRateResolver struct {
	baseline *RateStore
}

func NewUserRateResolver(baseline *RateStore) *UserRateResolver {
	return &UserRateResolver{baseline: baseline}
}

// Resolve returns the account's personal table when it has one and the baseline
// otherwise. The result never aliases the account or the baseline.
func (r *UserRateResolver) Resolve(account domain.Account) domain.EffectiveRates {
	if table, ok := account.PersonalRates.Table(); ok {
		return domain.EffectiveRates{Rates: table, Overridden: true}
	}
	return domain.EffectiveRates{Rates: r.baseline.Get(), Overridden: false}
}

// PersonalTable returns a mutable copy of the account's personal table,
// initialised from the baseline when the account still inherits it.
func (r *UserRateResolver) PersonalTable(account domain.Account) domain.Rates {
	if table, ok := account.PersonalRates.Table(); ok {
		return table
	}
	return r.baseline.Get()
}
