package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/demobank/bank_ledger_app/internal/dto"
	"github.com/demobank/bank_ledger_app/internal/handlers"
	"github.com/demobank/bank_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
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

// --- Mock ConversionService ---
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

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	mockAccounts  *MockAccountService
	mockConverter *MockConversionService
	router        *gin.Engine
}

func (suite *AccountHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.mockAccounts = new(MockAccountService)
	suite.mockConverter = new(MockConversionService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, suite.mockAccounts, suite.mockConverter)
}

func (suite *AccountHandlerTestSuite) performJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Created() {
	accountID := uuid.NewString()
	suite.mockAccounts.On("CreateAccount", mock.Anything, "John", "Doe", domain.USD).
		Return(&domain.Account{
			AccountID: accountID,
			FirstName: "John",
			LastName:  "Doe",
			Balance:   decimal.Zero,
			Currency:  domain.USD,
		}, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/accounts",
		`{"firstName":"John","lastName":"Doe","currency":"USD"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.True(resp.Balance.IsZero())
	suite.Equal(domain.USD, resp.Currency)
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_UnsupportedCurrency() {
	w := suite.performJSON(http.MethodPost, "/api/v1/accounts",
		`{"firstName":"John","lastName":"Doe","currency":"GBP"}`)

	// Rejected by the currency binding tag before reaching the service.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccounts.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	missingID := uuid.NewString()
	suite.mockAccounts.On("GetAccountByID", mock.Anything, missingID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+missingID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeposit_OK() {
	accountID := uuid.NewString()
	suite.mockAccounts.On("Deposit", mock.Anything, accountID,
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(decimal.NewFromInt(100)) }),
		domain.EUR,
	).Return(&domain.Account{
		AccountID: accountID,
		Balance:   decimal.NewFromFloat(118.0),
		Currency:  domain.USD,
	}, nil).Once()

	w := suite.performJSON(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/deposit", accountID),
		`{"amount":100,"currency":"EUR"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromFloat(118.0)))
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InsufficientFunds() {
	accountID := uuid.NewString()
	suite.mockAccounts.On("Withdraw", mock.Anything, accountID, mock.Anything, domain.USD).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	w := suite.performJSON(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/withdraw", accountID),
		`{"amount":50,"currency":"USD"}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *AccountHandlerTestSuite) TestWithdraw_InvalidAmount() {
	accountID := uuid.NewString()
	suite.mockAccounts.On("Withdraw", mock.Anything, accountID, mock.Anything, domain.USD).
		Return(nil, apperrors.ErrInvalidAmount).Once()

	w := suite.performJSON(http.MethodPost, fmt.Sprintf("/api/v1/accounts/%s/withdraw", accountID),
		`{"amount":-5,"currency":"USD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AccountHandlerTestSuite) TestConvert_OK() {
	amount := decimal.NewFromInt(100)
	suite.mockConverter.On("ConvertWithDetails", mock.Anything, domain.EUR, domain.USD,
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(amount) }),
	).Return(&domain.Conversion{
		Amount:          amount,
		From:            domain.EUR,
		To:              domain.USD,
		Rate:            decimal.NewFromFloat(1.18),
		ConvertedAmount: decimal.NewFromFloat(118.0),
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?amount=100&from=EUR&to=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Rate.Equal(decimal.NewFromFloat(1.18)))
	suite.True(resp.ConvertedAmount.Equal(decimal.NewFromFloat(118.0)))
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestConvert_InvalidAmount() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?amount=abc&from=EUR&to=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConverter.AssertNotCalled(suite.T(), "ConvertWithDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
