package dto

import (
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateCurrency implements the `currency` binding tag: the value must be
// one of the enumerated currency codes. Rejecting unknown codes at the edge
// keeps them out of rate resolution.
func validateCurrency(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrency(fl.Field().String())
	return err == nil
}

// RegisterValidators installs custom binding validators on gin's validator
// engine. Call once at startup before handling requests.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", validateCurrency)
	}
}
