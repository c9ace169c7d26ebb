package services

import (
	"context"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when the account does not exist,
	// distinguishable from a zero-balance account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountWriterSvc defines balance-mutating operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens a new account with a zero balance in the given
	// currency and returns the stored record including its assigned id.
	CreateAccount(ctx context.Context, firstName, lastName string, currency domain.Currency) (*domain.Account, error)

	// Deposit credits the account. Amounts in a different currency are
	// converted into the account's currency first.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, currency domain.Currency) (*domain.Account, error)

	// Withdraw debits the account, rejecting any debit that would drive the
	// balance negative. Amounts in a different currency are converted into
	// the account's currency first.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, currency domain.Currency) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
