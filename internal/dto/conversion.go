package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the payload of a conversion. Amount accepts a JSON number
// or a numeric string.
type ConvertRequest struct {
	Amount       json.Number `json:"amount" binding:"required"`
	FromCurrency string      `json:"fromCurrency" binding:"required,currency_code"`
	ToCurrency   string      `json:"toCurrency" binding:"required,currency_code"`
}

// ConvertResponse is the result of a conversion. Result carries at most 4 decimal places.
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Result       decimal.Decimal `json:"result"`
}

// ToConvertResponse converts a domain.ConversionResult to ConvertResponse DTO
func ToConvertResponse(res *domain.ConversionResult) ConvertResponse {
	return ConvertResponse{
		Amount:       res.Amount,
		FromCurrency: res.FromCurrency,
		ToCurrency:   res.ToCurrency,
		Result:       res.ConvertedAmount,
	}
}
