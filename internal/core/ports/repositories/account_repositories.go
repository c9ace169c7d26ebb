package repositories

import (
	"context"
	"time"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when no such account exists.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. Identity assignment is the store's
	// responsibility: the returned account carries the freshly assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccountBalance replaces the balance of an account, guarded by the
	// version observed at read time. Returns apperrors.ErrConflict when the
	// account changed underneath the caller.
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, expectedVersion int64, now time.Time) (*domain.Account, error)
}

// AccountRepository combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
