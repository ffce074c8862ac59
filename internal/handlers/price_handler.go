package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/quote"
	"assetfolio/internal/services"
)

// PriceHandler handles quote lookup requests.
type PriceHandler struct {
	priceService services.PriceServicer
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(priceService services.PriceServicer) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// PriceResponse represents a resolved quote.
type PriceResponse struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// GetPrice handles fetching the current price for a symbol.
// @Summary     Get current price
// @Description Get the current market price for a ticker symbol
// @Tags        prices
// @Produce     json
// @Param       symbol path string true "Ticker symbol"
// @Success     200 {object} PriceResponse
// @Failure     404 {object} ErrorResponse "No quote available"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /prices/{symbol} [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	symbol := c.Param("symbol")

	price, ok := h.priceService.CurrentPrice(c.Request.Context(), symbol)
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No quote available for symbol "+quote.Normalize(symbol)))
		return
	}

	c.JSON(http.StatusOK, PriceResponse{Symbol: quote.Normalize(symbol), Price: price})
}
