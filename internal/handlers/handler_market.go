package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/dto"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// marketHandler handles HTTP requests for the cached market data.
type marketHandler struct {
	marketService portssvc.MarketDataReaderSvc
	refresher     portssvc.RefresherSvc
	formatter     dto.Formatter
}

func newMarketHandler(ms portssvc.MarketDataReaderSvc, r portssvc.RefresherSvc, f dto.Formatter) *marketHandler {
	return &marketHandler{
		marketService: ms,
		refresher:     r,
		formatter:     f,
	}
}

// registerMarketRoutes registers routes related to market data.
func registerMarketRoutes(rg *gin.RouterGroup, ms portssvc.MarketDataReaderSvc, r portssvc.RefresherSvc, f dto.Formatter) {
	h := newMarketHandler(ms, r, f)

	rg.GET("/coins", h.listCoins)
	rg.POST("/market/refresh", h.refreshMarket)
}

// listCoins godoc
// @Summary Search cached coins
// @Description Filters the cached top coins by name or symbol (case-insensitive), preserving market-cap order
// @Tags market
// @Produce  json
// @Param   search query string false "Name or symbol fragment"
// @Param   limit query int false "Page size" minimum(1) maximum(250)
// @Param   pageToken query string false "nextPageToken of the previous page"
// @Success 200 {object} dto.ListCoinsResponse
// @Failure 400 {object} map[string]string "Invalid query or stale page token"
// @Security BearerAuth
// @Router /coins [get]
func (h *marketHandler) listCoins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCoinsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCoins", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	snapshot := h.marketService.Snapshot()
	offset := 0
	if params.PageToken != "" {
		fetchedAt, off, err := pagination.DecodeToken(params.PageToken)
		if err != nil {
			logger.Warn("Invalid page token for ListCoins", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page token"})
			return
		}
		// Offsets are only meaningful within the snapshot that produced them.
		if !fetchedAt.Equal(snapshot.FetchedAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Market data changed since this page token was issued; start from the first page"})
			return
		}
		offset = off
	}

	coins, next := pagination.Page(h.marketService.SearchCoins(params.Search, 0), offset, params.Limit)
	resp := dto.ToListCoinsResponse(coins, snapshot.QuoteCurrency, h.formatter)
	if next > 0 {
		resp.NextPageToken = pagination.EncodeToken(snapshot.FetchedAt, next)
	}
	c.JSON(http.StatusOK, resp)
}

// refreshMarket godoc
// @Summary Refresh market data
// @Description Starts an asynchronous market data refresh in the active display currency
// @Tags market
// @Success 202 {object} map[string]string
// @Security BearerAuth
// @Router /market/refresh [post]
func (h *marketHandler) refreshMarket(c *gin.Context) {
	h.refresher.TriggerMarketRefresh(c.Request.Context())
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}
