package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PivotCurrency is the currency every rate is expressed against.
// A rate of 1 means parity with the pivot.
const PivotCurrency = "USD"

// PivotRate is the only rate the pivot currency may carry.
var PivotRate = decimal.NewFromInt(1)

const (
	minCurrencyCodeLen = 2
	maxCurrencyCodeLen = 10
)

// Accepted amounts and rates stay inside the float64 magnitude range and
// decimal128 precision.
const (
	maxDecimalMagnitude  = 308
	maxSignificantDigits = 34
)

// NormalizeCurrencyCode trims and upper-cases a currency code and checks that it is
// made of ASCII letters and digits only.
func NormalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < minCurrencyCodeLen || len(code) > maxCurrencyCodeLen {
		return "", fmt.Errorf("%w: '%s' must be %d-%d characters", apperrors.ErrInvalidCurrencyCode, code, minCurrencyCodeLen, maxCurrencyCodeLen)
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", fmt.Errorf("%w: '%s' contains invalid characters", apperrors.ErrInvalidCurrencyCode, code)
		}
	}
	return code, nil
}

// IsPivot reports whether code names the pivot currency.
func IsPivot(code string) bool {
	return code == PivotCurrency
}

// ParseAmount parses a user supplied amount. NaN, infinities, zero and negative
// values are rejected with ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := parsePositive(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s'", apperrors.ErrInvalidAmount, raw)
	}
	return d, nil
}

// ParseRate parses a user supplied rate with the same rules as ParseAmount,
// reporting ErrInvalidRate instead.
func ParseRate(raw string) (decimal.Decimal, error) {
	d, err := parsePositive(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s'", apperrors.ErrInvalidRate, raw)
	}
	return d, nil
}

func parsePositive(raw string) (decimal.Decimal, error) {
	// decimal.NewFromString has no representation for NaN or Inf and rejects them.
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if err := CheckPositive(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// CheckPositive reports an error unless d is positive, its order of magnitude is
// within ±308 and it has at most 34 significant digits.
func CheckPositive(d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%s is not positive", d.String())
	}

	coefficient := d.Coefficient().String()
	digits := strings.TrimRight(coefficient, "0")
	trailingZeros := int64(len(coefficient) - len(digits))
	if len(digits) > maxSignificantDigits {
		return fmt.Errorf("more than %d significant digits", maxSignificantDigits)
	}

	// value = digits * 10^(exponent+trailingZeros); its leading digit sits at this power of ten
	magnitude := int64(len(digits)) - 1 + int64(d.Exponent()) + trailingZeros
	if magnitude > maxDecimalMagnitude || magnitude < -maxDecimalMagnitude {
		return fmt.Errorf("order of magnitude %d is out of range", magnitude)
	}
	return nil
}
