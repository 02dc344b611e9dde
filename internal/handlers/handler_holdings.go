package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/dto"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// holdingsHandler handles HTTP requests related to holdings.
type holdingsHandler struct {
	holdingsService portssvc.HoldingsSvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

func newHoldingsHandler(hs portssvc.HoldingsSvcFacade, cs portssvc.CurrencyReaderSvc) *holdingsHandler {
	return &holdingsHandler{
		holdingsService: hs,
		currencyService: cs,
	}
}

// registerHoldingsRoutes registers routes related to holdings.
func registerHoldingsRoutes(rg *gin.RouterGroup, hs portssvc.HoldingsSvcFacade, cs portssvc.CurrencyReaderSvc) {
	h := newHoldingsHandler(hs, cs)

	holdings := rg.Group("/holdings")
	{
		holdings.GET("", h.listHoldings)
		holdings.POST("", h.addHolding)
		holdings.DELETE("/:holdingID", h.removeHolding)
	}
}

// listHoldings godoc
// @Summary List holdings
// @Description Returns the stored holdings with purchase prices in USD
// @Tags holdings
// @Produce  json
// @Success 200 {array} dto.HoldingResponse
// @Security BearerAuth
// @Router /holdings [get]
func (h *holdingsHandler) listHoldings(c *gin.Context) {
	holdings := h.holdingsService.ListHoldings(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListHoldingResponse(holdings))
}

// addHolding godoc
// @Summary Add a holding
// @Description Adds a position. The purchase price is given in the request currency (default: the active display currency) and stored in USD.
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   holding body dto.AddHoldingRequest true "Holding details"
// @Success 201 {object} dto.HoldingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save holding"
// @Security BearerAuth
// @Router /holdings [post]
func (h *holdingsHandler) addHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddHolding", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	priceCurrency := req.Currency
	if priceCurrency == "" {
		priceCurrency = h.currencyService.Currency()
	}

	logger = logger.With(slog.String("coin_id", req.CoinID), slog.String("price_currency", priceCurrency))
	holding, err := h.holdingsService.AddHolding(c.Request.Context(), req.CoinID, req.Amount, req.PurchasePrice, priceCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding holding", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add holding", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save holding"})
		}
		return
	}

	logger.Info("Holding added successfully", slog.String("holding_id", holding.ID))
	c.JSON(http.StatusCreated, dto.ToHoldingResponse(*holding))
}

// removeHolding godoc
// @Summary Remove a holding
// @Description Removes a holding by id. Unknown ids are ignored.
// @Tags holdings
// @Param   holdingID path string true "Holding ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to save holdings"
// @Security BearerAuth
// @Router /holdings/{holdingID} [delete]
func (h *holdingsHandler) removeHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	holdingID := c.Param("holdingID")

	if err := h.holdingsService.RemoveHolding(c.Request.Context(), holdingID); err != nil {
		logger.Error("Failed to remove holding", slog.String("holding_id", holdingID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save holdings"})
		return
	}
	c.Status(http.StatusNoContent)
}
