package domain

import (
	"fmt"
	"strings"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
)

// Currency is a supported currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	RON Currency = "RON"
)

// SupportedCurrencies returns the closed set of currencies the system accepts.
func SupportedCurrencies() []Currency {
	return []Currency{USD, EUR, RON}
}

// IsSupported reports whether the currency is one of the enumerated codes.
func (c Currency) IsSupported() bool {
	switch c {
	case USD, EUR, RON:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency normalizes a currency code and rejects anything outside the
// enumerated set. Unknown codes must never reach rate resolution.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: unsupported currency %q, allowed: USD, EUR, RON", apperrors.ErrValidation, code)
	}
	return c, nil
}
