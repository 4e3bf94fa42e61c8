package domain

import "github.com/shopspring/decimal"

// ConversionPrecision is the number of decimal places a converted amount is rounded to.
const ConversionPrecision int32 = 4

// ConversionResult is the outcome of converting Amount from one currency to another.
type ConversionResult struct {
	Amount          decimal.Decimal
	FromCurrency    string
	ToCurrency      string
	ConvertedAmount decimal.Decimal
}
