package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/demobank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &accountRepository{pool: pool}
}

// Ensure accountRepository implements the AccountRepository port
var _ portsrepo.AccountRepository = (*accountRepository)(nil)

// SaveAccount inserts a new account, assigning it a fresh id. Identity
// assignment lives here, not in the entity or the service.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	account.AccountID = uuid.NewString()
	account.Version = 1

	query := `
		INSERT INTO accounts (account_id, first_name, last_name, balance, currency_code, version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.FirstName,
		account.LastName,
		account.Balance,
		account.Currency,
		account.Version,
		account.CreatedAt,
		account.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, first_name, last_name, balance, currency_code, version, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var acc domain.Account
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&acc.AccountID,
		&acc.FirstName,
		&acc.LastName,
		&acc.Balance,
		&acc.Currency,
		&acc.Version,
		&acc.CreatedAt,
		&acc.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return &acc, nil
}

// UpdateAccountBalance replaces the balance of an account with a
// compare-and-swap on the version column. A zero-row update against an
// existing account means a concurrent writer won the race.
func (r *accountRepository) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, expectedVersion int64, now time.Time) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = $1, version = version + 1, last_updated_at = $2
		WHERE account_id = $3 AND version = $4;
	`
	tag, err := r.pool.Exec(ctx, query, balance, now, accountID, expectedVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing account from a lost version race.
		if _, findErr := r.FindAccountByID(ctx, accountID); findErr != nil {
			return nil, findErr
		}
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrConflict)
	}
	return r.FindAccountByID(ctx, accountID)
}
