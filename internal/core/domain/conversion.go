package domain

import (
	"github.com/shopspring/decimal"
)

// Conversion is the transient result of converting an amount between two
// currencies. It is reported to front ends and never persisted. Rate and
// ConvertedAmount always come from a single rate resolution, so
// ConvertedAmount equals Amount * Rate exactly.
type Conversion struct {
	Amount          decimal.Decimal `json:"amount"`
	From            Currency        `json:"from"`
	To              Currency        `json:"to"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}
