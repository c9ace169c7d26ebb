package dto

import (
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertParams defines query parameters for a currency conversion.
// Amount arrives as a string and is parsed into a decimal by the handler,
// preserving exact input precision.
type ConvertParams struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,currency"`
	To     string `form:"to" binding:"required,currency"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	From            domain.Currency `json:"from"`
	To              domain.Currency `json:"to"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Amount:          conv.Amount,
		From:            conv.From,
		To:              conv.To,
		Rate:            conv.Rate,
		ConvertedAmount: conv.ConvertedAmount,
	}
}
