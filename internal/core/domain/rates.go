package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Rates maps a currency code to the number of units of that currency per one unit
// of the pivot currency. Every value is positive.
type Rates map[string]decimal.Decimal

// Clone returns an independent copy. A nil table clones to an empty, non-nil one.
func (r Rates) Clone() Rates {
	out := make(Rates, len(r))
	for code, rate := range r {
		out[code] = rate
	}
	return out
}

// Codes returns the currency codes in ascending order.
func (r Rates) Codes() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Equal reports whether both tables hold the same codes with numerically equal rates.
func (r Rates) Equal(other Rates) bool {
	if len(r) != len(other) {
		return false
	}
	for code, rate := range r {
		o, ok := other[code]
		if !ok || !o.Equal(rate) {
			return false
		}
	}
	return true
}

// Lookup returns the rate for code. The pivot currency resolves to PivotRate
// when the table does not list it.
func (r Rates) Lookup(code string) (decimal.Decimal, bool) {
	rate, ok := r[code]
	if ok {
		return rate, true
	}
	if IsPivot(code) {
		return PivotRate, true
	}
	return decimal.Zero, false
}

// PersonalRates is either Inherited (the account follows the baseline) or
// Overridden with the account's own table. The zero value is Inherited.
type PersonalRates struct {
	overridden bool
	rates      Rates
}

// InheritedRates returns a PersonalRates that follows the baseline.
func InheritedRates() PersonalRates {
	return PersonalRates{}
}

// OverriddenRates returns a PersonalRates owning a private copy of rates.
func OverriddenRates(rates Rates) PersonalRates {
	return PersonalRates{overridden: true, rates: rates.Clone()}
}

// IsOverridden reports whether the account has its own table.
func (p PersonalRates) IsOverridden() bool {
	return p.overridden
}

// Table returns a copy of the personal table and true, or nil and false when inherited.
func (p PersonalRates) Table() (Rates, bool) {
	if !p.overridden {
		return nil, false
	}
	return p.rates.Clone(), true
}

// Clone deep-copies the personal table so two accounts never share a map.
func (p PersonalRates) Clone() PersonalRates {
	if !p.overridden {
		return InheritedRates()
	}
	return OverriddenRates(p.rates)
}

// EffectiveRates is the table used to answer a request for one account.
type EffectiveRates struct {
	Rates      Rates
	Overridden bool
}
