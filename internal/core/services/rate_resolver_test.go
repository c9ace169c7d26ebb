package services

import (
	"context"
	"testing"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRateFetcher is a mock type for the RateFetcher interface
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite Setup ---

type RateResolverTestSuite struct {
	suite.Suite
	mockFetcher *MockRateFetcher
	resolver    *RateResolver
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.mockFetcher = new(MockRateFetcher)
	suite.resolver = NewRateResolver(suite.mockFetcher)
}

// --- Test Cases ---

func (suite *RateResolverTestSuite) TestResolve_SameCurrencySkipsFetch() {
	ctx := context.Background()

	for _, c := range domain.SupportedCurrencies() {
		rate, err := suite.resolver.Resolve(ctx, c, c)
		suite.Require().NoError(err)
		suite.True(rate.Equal(decimal.NewFromInt(1)), "rate for %s->%s should be 1, got %s", c, c, rate)
	}

	// The fetcher must never be consulted for an identity pair.
	suite.mockFetcher.AssertNotCalled(suite.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateResolverTestSuite) TestResolve_LiveRate() {
	ctx := context.Background()
	liveRate := decimal.NewFromFloat(1.0732)

	suite.mockFetcher.On("FetchRate", ctx, domain.EUR, domain.USD).Return(liveRate, nil).Once()

	rate, err := suite.resolver.Resolve(ctx, domain.EUR, domain.USD)

	suite.Require().NoError(err)
	suite.True(rate.Equal(liveRate))
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolve_FallbackOnFetchError() {
	ctx := context.Background()

	suite.mockFetcher.On("FetchRate", ctx, domain.EUR, domain.USD).
		Return(decimal.Zero, apperrors.ErrRateFetch).Once()

	rate, err := suite.resolver.Resolve(ctx, domain.EUR, domain.USD)

	// Fetch failures degrade to the documented fallback rate, never an error.
	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromFloat(1.18)), "expected fallback 1.18, got %s", rate)
	suite.mockFetcher.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolve_UnsupportedPair() {
	ctx := context.Background()
	unknown := domain.Currency("GBP")

	suite.mockFetcher.On("FetchRate", ctx, unknown, domain.USD).
		Return(decimal.Zero, apperrors.ErrRateFetch).Once()

	_, err := suite.resolver.Resolve(ctx, unknown, domain.USD)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedPair)
}

// TestFallbackTableCoversAllPairs is the gap check: adding a currency to the
// enumerated set without extending the fallback table fails here.
func TestFallbackTableCoversAllPairs(t *testing.T) {
	currencies := domain.SupportedCurrencies()
	for _, from := range currencies {
		for _, to := range currencies {
			if from == to {
				continue
			}
			if _, ok := fallbackRates[currencyPair{from, to}]; !ok {
				t.Errorf("fallback table missing rate for %s->%s", from, to)
			}
		}
	}
	if got, want := len(fallbackRates), len(currencies)*(len(currencies)-1); got != want {
		t.Errorf("fallback table has %d entries, want %d", got, want)
	}
}

// TestFallbackTableValues pins the documented fallback rates.
func TestFallbackTableValues(t *testing.T) {
	expected := map[currencyPair]string{
		{domain.USD, domain.EUR}: "0.85",
		{domain.USD, domain.RON}: "4.5",
		{domain.EUR, domain.USD}: "1.18",
		{domain.EUR, domain.RON}: "5",
		{domain.RON, domain.USD}: "0.22",
		{domain.RON, domain.EUR}: "0.2",
	}
	for pair, want := range expected {
		got, ok := fallbackRates[pair]
		if !ok {
			t.Fatalf("missing fallback rate for %s->%s", pair.from, pair.to)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("fallback rate for %s->%s = %s, want %s", pair.from, pair.to, got, want)
		}
	}
}

func TestRateResolverTestSuite(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}
