package dto

import (
	"time"

	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Currency  string `json:"currency" binding:"required,currency"`
}

// AmountRequest defines the data for a deposit or withdrawal. The currency
// may differ from the account's; the service converts before applying.
type AmountRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,currency"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      domain.Currency `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		FirstName:     acc.FirstName,
		LastName:      acc.LastName,
		Balance:       acc.Balance,
		Currency:      acc.Currency,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}
