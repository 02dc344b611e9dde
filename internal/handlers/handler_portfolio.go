package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/dto"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// portfolioHandler handles HTTP requests for the valued portfolio.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioService
	formatter        dto.Formatter
}

func newPortfolioHandler(ps portssvc.PortfolioService, f dto.Formatter) *portfolioHandler {
	return &portfolioHandler{
		portfolioService: ps,
		formatter:        f,
	}
}

// registerPortfolioRoutes registers routes related to the portfolio view.
func registerPortfolioRoutes(rg *gin.RouterGroup, ps portssvc.PortfolioService, f dto.Formatter) {
	h := newPortfolioHandler(ps, f)
	rg.GET("/portfolio", h.getPortfolio)
}

// getPortfolio godoc
// @Summary Get the valued portfolio
// @Description Values every holding against the cached market data. Holdings whose coin is not in the top listing are left out and counted in unmatchedHoldings.
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.PortfolioResponse
// @Security BearerAuth
// @Router /portfolio [get]
func (h *portfolioHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	view := h.portfolioService.GetPortfolio(c.Request.Context())

	logger.Debug("Portfolio computed",
		slog.Int("items", len(view.Items)),
		slog.Int("unmatched", view.UnmatchedHoldings))
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(view, h.formatter))
}
