package conversion

import (
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Convert converts amount from one currency to another using rates expressed as
// units per pivot. The amount is always routed through the pivot, even when from
// and to are the same currency, and the result is rounded half away from zero to
// domain.ConversionPrecision places.
func Convert(amount decimal.Decimal, from, to string, rates domain.Rates) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount.String())
	}

	fromRate, ok := rates.Lookup(from)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: '%s'", apperrors.ErrUnknownCurrency, from)
	}
	toRate, ok := rates.Lookup(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: '%s'", apperrors.ErrUnknownCurrency, to)
	}
	if !fromRate.IsPositive() || !toRate.IsPositive() {
		// Tables are validated on write, so this only guards hand-edited storage.
		return decimal.Zero, fmt.Errorf("%w: non-positive rate for '%s' or '%s'", apperrors.ErrInvalidRate, from, to)
	}

	pivotAmount := amount.Div(fromRate)
	return pivotAmount.Mul(toRate).Round(domain.ConversionPrecision), nil
}
