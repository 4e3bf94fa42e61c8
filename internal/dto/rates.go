package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateRateRequest sets (creates or overwrites) one entry of the personal table.
type UpdateRateRequest struct {
	Currency string      `json:"currency" binding:"required,currency_code"`
	Rate     json.Number `json:"rate" binding:"required"`
}

// AddRateRequest adds an entry that must not exist yet.
type AddRateRequest struct {
	NewCurrency string      `json:"newCurrency" binding:"required,currency_code"`
	NewRate     json.Number `json:"newRate" binding:"required"`
}

// DeleteRateRequest removes one entry of the personal table.
type DeleteRateRequest struct {
	CurrencyToDelete string `json:"currencyToDelete" binding:"required,currency_code"`
}

// RatesResponse describes an account's effective rate table.
type RatesResponse struct {
	Pivot      string                     `json:"pivot"`
	Overridden bool                       `json:"overridden"`
	Currencies []string                   `json:"currencies"`
	Rates      map[string]decimal.Decimal `json:"rates"`
}

// RateMutationResponse is returned by the rate administration routes.
type RateMutationResponse struct {
	Message string        `json:"message"`
	Rates   RatesResponse `json:"rates"`
}

// ToRatesResponse converts domain.EffectiveRates to RatesResponse DTO
func ToRatesResponse(eff *domain.EffectiveRates) RatesResponse {
	return RatesResponse{
		Pivot:      domain.PivotCurrency,
		Overridden: eff.Overridden,
		Currencies: eff.Rates.Codes(),
		Rates:      eff.Rates.Clone(),
	}
}
