package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/demobank/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/demobank/bank_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	converter   portssvc.ConversionSvc
}

// NewAccountService creates a new account service. The conversion service is
// invoked whenever a deposit or withdraw arrives in a currency other than the
// account's own.
func NewAccountService(repo portsrepo.AccountRepository, converter portssvc.ConversionSvc) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo: repo,
		converter:   converter,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, firstName, lastName string, currency domain.Currency) (*domain.Account, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: account holder first and last name are required", apperrors.ErrValidation)
	}
	if !currency.IsSupported() {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
	}

	now := time.Now()
	account := domain.Account{
		FirstName: firstName,
		LastName:  lastName,
		Balance:   decimal.Zero,
		Currency:  currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The store assigns the account id on first save.
	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("currency", currency.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", saved.AccountID),
		slog.String("currency", saved.Currency.String()))
	return saved, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err // Propagate error (including NotFound)
	}
	return account, nil
}

func (s *accountServiceImpl) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, currency domain.Currency) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrInvalidAmount)
	}

	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	credit, err := s.resolveAmount(ctx, amount, currency, account.Currency)
	if err != nil {
		return nil, err
	}

	newBalance := account.Balance.Add(credit)
	updated, err := s.accountRepo.UpdateAccountBalance(ctx, account.AccountID, newBalance, account.Version, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to persist deposit",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit successful",
		slog.String("account_id", updated.AccountID),
		slog.String("credited", credit.String()),
		slog.String("balance", updated.Balance.String()))
	return updated, nil
}

func (s *accountServiceImpl) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, currency domain.Currency) (*domain.Account, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdraw amount must be positive", apperrors.ErrInvalidAmount)
	}

	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	debit, err := s.resolveAmount(ctx, amount, currency, account.Currency)
	if err != nil {
		return nil, err
	}

	// Balance must never go negative; reject and leave the account unchanged.
	if debit.LessThanOrEqual(decimal.Zero) || debit.GreaterThan(account.Balance) {
		return nil, fmt.Errorf("%w: balance %s %s, attempted debit %s %s",
			apperrors.ErrInsufficientFunds,
			account.Balance, account.Currency, debit, account.Currency)
	}

	newBalance := account.Balance.Sub(debit)
	updated, err := s.accountRepo.UpdateAccountBalance(ctx, account.AccountID, newBalance, account.Version, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to persist withdrawal",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal successful",
		slog.String("account_id", updated.AccountID),
		slog.String("debited", debit.String()),
		slog.String("balance", updated.Balance.String()))
	return updated, nil
}

// resolveAmount converts amount from the transaction currency into the
// account currency when they differ. Conversion is total for the enumerated
// currencies, so ErrConversionFailed only arises for codes outside the set.
func (s *accountServiceImpl) resolveAmount(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	converted, err := s.converter.Convert(ctx, from, to, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: from %s to %s: %v", apperrors.ErrConversionFailed, from, to, err)
	}

	s.LogInfo(ctx, "Converted transaction amount into account currency",
		slog.String("amount", amount.String()),
		slog.String("from", from.String()),
		slog.String("converted", converted.String()),
		slog.String("to", to.String()))
	return converted, nil
}
