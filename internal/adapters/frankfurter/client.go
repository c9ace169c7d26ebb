// Package frankfurter implements the rate fetcher port against the
// Frankfurter exchange rate API (https://frankfurter.dev/).
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portsrepo "github.com/demobank/bank_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public Frankfurter endpoint.
const DefaultBaseURL = "https://api.frankfurter.dev"

// DefaultTimeout bounds the blocking fetch; a timeout is a fetch failure and
// feeds the resolver's fallback path.
const DefaultTimeout = 5 * time.Second

// Client fetches live exchange rates over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Frankfurter client. Empty baseURL and zero timeout
// select the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure Client implements the RateFetcher port
var _ portsrepo.RateFetcher = (*Client)(nil)

// latestResponse mirrors the relevant part of the Frankfurter response body:
// a "rates" object mapping target currency code to a numeric rate.
type latestResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate requests the latest quote with `from` as base and `to` as the
// only symbol, and parses the rate for `to` out of the response. Every
// failure class (transport, non-2xx, malformed body, missing field) is
// reported as apperrors.ErrRateFetch.
func (c *Client) FetchRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("base", from.String())
	query.Set("symbols", to.String())
	endpoint := fmt.Sprintf("%s/v1/latest?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building request: %v", apperrors.ErrRateFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Zero, fmt.Errorf("%w: unexpected status %d from rate service", apperrors.ErrRateFetch, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding response: %v", apperrors.ErrRateFetch, err)
	}

	rate, ok := body.Rates[to.String()]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: response missing rate for %s", apperrors.ErrRateFetch, to)
	}

	return rate, nil
}
