package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelRateTable converts a domain Rates to a model RateTable
func ToModelRateTable(d domain.Rates) models.RateTable {
	m := make(models.RateTable, len(d))
	for code, rate := range d {
		m[code] = json.Number(rate.String())
	}
	return m
}

// ToDomainRates converts a model RateTable to a domain Rates. Codes are normalized,
// every rate must pass domain.CheckPositive and a listed pivot must be exactly 1.
func ToDomainRates(m models.RateTable) (domain.Rates, error) {
	d := make(domain.Rates, len(m))
	for rawCode, raw := range m {
		code, err := domain.NormalizeCurrencyCode(rawCode)
		if err != nil {
			return nil, err
		}
		if _, dup := d[code]; dup {
			return nil, fmt.Errorf("currency '%s' listed more than once", code)
		}
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("rate for '%s': %w", code, err)
		}
		if err := domain.CheckPositive(rate); err != nil {
			return nil, fmt.Errorf("rate for '%s': %w", code, err)
		}
		if domain.IsPivot(code) && !rate.Equal(domain.PivotRate) {
			return nil, fmt.Errorf("rate for pivot '%s' must be %s, got %s", code, domain.PivotRate, rate.String())
		}
		d[code] = rate
	}
	return d, nil
}
