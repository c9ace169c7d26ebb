package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a non-positive amount on a deposit or withdraw.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates a withdraw that would drive the balance negative.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConversionFailed indicates that a currency conversion could not be performed.
var ErrConversionFailed = errors.New("currency conversion failed")

// ErrUnsupportedPair indicates a currency pair outside the enumerated set.
var ErrUnsupportedPair = errors.New("currency pair not supported")

// ErrRateFetch indicates a transport or parse failure while fetching a live
// exchange rate. It is absorbed by the rate resolver's fallback and never
// reaches the account service.
var ErrRateFetch = errors.New("rate fetch failed")

// ErrConflict indicates a concurrent modification detected by the store's
// version check.
var ErrConflict = errors.New("resource was modified concurrently")
