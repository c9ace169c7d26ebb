package services

import (
	"context"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portssvc "github.com/demobank/bank_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// conversionServiceImpl implements the ConversionSvc interface.
type conversionServiceImpl struct {
	BaseService
	resolver *RateResolver
}

// NewConversionService creates a new conversion service using the given
// rate resolver.
func NewConversionService(resolver *RateResolver) portssvc.ConversionSvc {
	return &conversionServiceImpl{resolver: resolver}
}

// Ensure conversionServiceImpl implements the ConversionSvc interface
var _ portssvc.ConversionSvc = (*conversionServiceImpl)(nil)

// Convert multiplies amount by the resolved rate for (from, to). No rounding
// or currency-precision policy is applied; display formatting is owned by
// front ends. The sign of amount is preserved, conversion does not reject it.
func (s *conversionServiceImpl) Convert(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := s.resolver.Resolve(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// ConvertWithDetails resolves the rate once and derives both the reported
// rate and the converted amount from that single resolution, so the two
// numbers cannot disagree even if consecutive fetches would.
func (s *conversionServiceImpl) ConvertWithDetails(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (*domain.Conversion, error) {
	rate, err := s.resolver.Resolve(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &domain.Conversion{
		Amount:          amount,
		From:            from,
		To:              to,
		Rate:            rate,
		ConvertedAmount: amount.Mul(rate),
	}, nil
}
