package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/cli"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, firstName, lastName string, currency domain.Currency) (*domain.Account, error) {
	args := m.Called(ctx, firstName, lastName, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, currency domain.Currency) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, currency domain.Currency) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockConversionService) ConvertWithDetails(ctx context.Context, from, to domain.Currency, amount decimal.Decimal) (*domain.Conversion, error) {
	args := m.Called(ctx, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func runScript(t *testing.T, accounts *MockAccountService, converter *MockConversionService, script string) string {
	t.Helper()
	var out bytes.Buffer
	repl := cli.New(accounts, converter, strings.NewReader(script), &out)
	require.NoError(t, repl.Run(context.Background()))
	return out.String()
}

func TestCLI_NewAccountAndBalance(t *testing.T) {
	accounts := new(MockAccountService)
	converter := new(MockConversionService)

	account := &domain.Account{
		AccountID: "acc-1",
		FirstName: "John",
		LastName:  "Doe",
		Balance:   decimal.Zero,
		Currency:  domain.USD,
	}
	accounts.On("CreateAccount", mock.Anything, "John", "Doe", domain.USD).Return(account, nil).Once()
	accounts.On("GetAccountByID", mock.Anything, "acc-1").Return(account, nil).Once()

	out := runScript(t, accounts, converter, "NewAccount John Doe usd\nBalance acc-1\nQuit\n")

	assert.Contains(t, out, "Account created. Account number: acc-1, Currency: USD")
	assert.Contains(t, out, "Account holder: John Doe, Balance: 0 USD")
	assert.Contains(t, out, "Goodbye!")
	accounts.AssertExpectations(t)
}

func TestCLI_DepositWithCommaDecimal(t *testing.T) {
	accounts := new(MockAccountService)
	converter := new(MockConversionService)

	accounts.On("Deposit", mock.Anything, "acc-1",
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(decimal.NewFromFloat(5.5)) }),
		domain.EUR,
	).Return(&domain.Account{
		AccountID: "acc-1",
		FirstName: "John",
		LastName:  "Doe",
		Balance:   decimal.NewFromFloat(5.5),
		Currency:  domain.EUR,
	}, nil).Once()

	out := runScript(t, accounts, converter, "Deposit 5,5 EUR acc-1\nQuit\n")

	assert.Contains(t, out, "Deposit successful. Account: John Doe, New balance: 5.5 EUR")
	accounts.AssertExpectations(t)
}

func TestCLI_WithdrawFailureIsReported(t *testing.T) {
	accounts := new(MockAccountService)
	converter := new(MockConversionService)

	accounts.On("Withdraw", mock.Anything, "acc-1", mock.Anything, domain.USD).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	out := runScript(t, accounts, converter, "Withdraw 50 USD acc-1\nQuit\n")

	assert.Contains(t, out, "Withdraw failed:")
	accounts.AssertExpectations(t)
}

func TestCLI_Convert(t *testing.T) {
	accounts := new(MockAccountService)
	converter := new(MockConversionService)

	converter.On("ConvertWithDetails", mock.Anything, domain.EUR, domain.USD,
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(decimal.NewFromInt(100)) }),
	).Return(&domain.Conversion{
		Amount:          decimal.NewFromInt(100),
		From:            domain.EUR,
		To:              domain.USD,
		Rate:            decimal.NewFromFloat(1.18),
		ConvertedAmount: decimal.NewFromFloat(118.0),
	}, nil).Once()

	out := runScript(t, accounts, converter, "Convert 100 EUR USD\nQuit\n")

	assert.Contains(t, out, "100 EUR = 118 USD (Rate: 1.18)")
	converter.AssertExpectations(t)
}

func TestCLI_UnknownCommandAndUsage(t *testing.T) {
	accounts := new(MockAccountService)
	converter := new(MockConversionService)

	out := runScript(t, accounts, converter, "Hello\nDeposit 5\nQuit\n")

	assert.Contains(t, out, "Unknown command. Valid commands: NewAccount, Deposit, Withdraw, Balance, Convert, Quit")
	assert.Contains(t, out, "Usage: Deposit [Amount] [Currency] [Account number]")
}
