package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/demobank/bank_ledger_app/internal/apperrors"
	"github.com/demobank/bank_ledger_app/internal/core/domain"
	portssvc "github.com/demobank/bank_ledger_app/internal/core/ports/services"
	"github.com/demobank/bank_ledger_app/internal/dto"
	"github.com/demobank/bank_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// conversionHandler handles HTTP requests related to currency conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvc) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers routes related to currency conversion.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	h := newConversionHandler(conversionService)
	rg.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts using the live exchange rate, or the fixed fallback table when the rate source is unreachable
// @Tags conversion
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid amount or unsupported currency"
// @Failure 500 {object} map[string]string "Conversion failed"
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		logger.Warn("Invalid amount for Convert", slog.String("amount", params.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + params.Amount})
		return
	}

	from, err := domain.ParseCurrency(params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := domain.ParseCurrency(params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conversion, err := h.conversionService.ConvertWithDetails(c.Request.Context(), from, to, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedPair) {
			logger.Warn("Unsupported currency pair", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Conversion failed in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}
