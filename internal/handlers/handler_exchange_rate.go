package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/dto"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(cs portssvc.CurrencySvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		currencyService: cs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade) {
	h := newExchangeRateHandler(cs)

	rg.GET("/exchange-rates", h.getExchangeRates)
	rg.GET("/convert", h.convert)
}

// getExchangeRates godoc
// @Summary Get the exchange-rate table
// @Description Returns the latest USD-based rates. loading is true until the first fetch succeeds.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getExchangeRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(h.currencyService.ExchangeRates(), h.currencyService.Loading()))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts through USD. Currencies without a known rate are treated as rate 1.
// @Tags exchange rates
// @Produce  json
// @Param   amount query string true "Amount"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + params.Amount})
		return
	}

	from := strings.ToUpper(params.From)
	to := strings.ToUpper(params.To)
	converted := h.currencyService.Convert(amount, from, to)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		From:   dto.NewMoney(h.currencyService, amount, from),
		Result: dto.NewMoney(h.currencyService, converted, to),
	})
}
