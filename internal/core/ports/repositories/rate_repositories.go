package repositories

import (
	"context"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateFetcher fetches a live exchange rate for a currency pair from an
// external quote source. Any transport, non-2xx or parse failure is reported
// as an error wrapping apperrors.ErrRateFetch; callers decide how to degrade.
type RateFetcher interface {
	FetchRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error)
}
