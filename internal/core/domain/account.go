package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
//
// Identity is assigned by the account store on first save, never by the
// entity itself. Holder names and currency are fixed at creation; the balance
// is mutated only through deposit/withdraw and never goes negative.
type Account struct {
	AccountID   string          `json:"accountID"` // Assigned by the store (UUID)
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    Currency        `json:"currency"`
	Version     int64           `json:"-"` // Optimistic concurrency token, store-managed
	AuditFields                 // Embed CreatedAt, LastUpdatedAt
}

// FullName returns the account holder's display name.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
