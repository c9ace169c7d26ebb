package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/demobank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// currencyPair is a directed (from, to) key into the fallback table.
type currencyPair struct {
	from domain.Currency
	to   domain.Currency
}

// fallbackRates is the fixed table consulted when the live rate source is
// unreachable. It must cover every ordered pair of distinct supported
// currencies; TestFallbackTableCoversAllPairs enforces the gap check when a
// currency is added.
var fallbackRates = map[currencyPair]decimal.Decimal{
	{domain.USD, domain.EUR}: decimal.NewFromFloat(0.85),
	{domain.USD, domain.RON}: decimal.NewFromFloat(4.5),
	{domain.EUR, domain.USD}: decimal.NewFromFloat(1.18),
	{domain.EUR, domain.RON}: decimal.NewFromFloat(5.0),
	{domain.RON, domain.USD}: decimal.NewFromFloat(0.22),
	{domain.RON, domain.EUR}: decimal.NewFromFloat(0.20),
}

// RateResolver resolves the exchange rate for a currency pair: live fetch
// first, fixed fallback table when the fetch fails. Fetch failures never
// propagate past this boundary; the only error it can return is
// apperrors.ErrUnsupportedPair, which requires a currency code outside the
// enumerated set.
type RateResolver struct {
	BaseService
	fetcher portsrepo.RateFetcher
}

// NewRateResolver creates a new RateResolver around the given fetcher.
func NewRateResolver(fetcher portsrepo.RateFetcher) *RateResolver {
	return &RateResolver{fetcher: fetcher}
}

// Resolve returns the rate to multiply an amount in `from` by to obtain the
// equivalent in `to`. Identical currencies resolve to 1 without a fetch.
func (r *RateResolver) Resolve(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, err := r.fetcher.FetchRate(ctx, from, to)
	if err == nil {
		r.LogDebug(ctx, "Resolved live exchange rate",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			slog.String("rate", rate.String()))
		return rate, nil
	}

	// Degrade, don't fail: substitute the fixed fallback rate. Callers are
	// not told which source produced the rate.
	r.LogWarn(ctx, "Live rate fetch failed, using fallback rate",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("error", err.Error()))

	if fallback, ok := fallbackRates[currencyPair{from, to}]; ok {
		return fallback, nil
	}

	return decimal.Zero, fmt.Errorf("%w: from %s to %s", apperrors.ErrUnsupportedPair, from, to)
}
