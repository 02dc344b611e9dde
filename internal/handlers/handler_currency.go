package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/dto"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to the display currency.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currency", h.getCurrency)
	rg.PUT("/currency", h.setCurrency)
	rg.GET("/currencies", h.listCurrencies)
}

// getCurrency godoc
// @Summary Get the display currency
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrencyStateResponse
// @Security BearerAuth
// @Router /currency [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CurrencyStateResponse{
		Currency: h.currencyService.Currency(),
		Loading:  h.currencyService.Loading(),
	})
}

// setCurrency godoc
// @Summary Set the display currency
// @Description Selects one of the supported currencies. Market data is re-quoted in the background.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.SetCurrencyRequest true "Currency code"
// @Success 200 {object} dto.CurrencyStateResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Security BearerAuth
// @Router /currency [put]
func (h *currencyHandler) setCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if !h.currencyService.SetCurrency(c.Request.Context(), req.Currency) {
		codes := make([]string, 0)
		for _, sc := range h.currencyService.ListSupportedCurrencies() {
			codes = append(codes, sc.Code)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported currency '" + req.Currency + "', expected one of " + strings.Join(codes, ", "),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyStateResponse{
		Currency: h.currencyService.Currency(),
		Loading:  h.currencyService.Loading(),
	})
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the selectable display currencies in display order
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.SupportedCurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListSupportedCurrencyResponse(h.currencyService.ListSupportedCurrencies()))
}
