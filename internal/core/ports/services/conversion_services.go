package services

import (
	"context"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvc converts amounts between currencies using the resolved rate
// for the pair. Total for the enumerated currencies; only non-enumerated
// codes can make it fail.
type ConversionSvc interface {
	// Convert returns amount multiplied by the resolved rate for (from, to).
	Convert(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (decimal.Decimal, error)

	// ConvertWithDetails performs a single rate resolution and reports both
	// the rate and the converted amount derived from it.
	ConvertWithDetails(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (*domain.Conversion, error)
}
