package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
	"assetfolio/internal/registry"
	"assetfolio/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// AssetPayload holds the writable fields of an asset. Asset-type-specific
// fields are optional and only applied to the matching type.
type AssetPayload struct {
	Symbol       string          `json:"symbol" binding:"required,min=1,max=20"`
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	BuyPrice     decimal.Decimal `json:"buy_price" binding:"required"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`

	// Stock / ETF
	Exchange      string           `json:"exchange,omitempty"`
	Sector        string           `json:"sector,omitempty"`
	DividendYield *decimal.Decimal `json:"dividend_yield,omitempty"`
	MarketCap     string           `json:"market_cap,omitempty"`

	// Bond
	CouponRate   *decimal.Decimal `json:"coupon_rate,omitempty"`
	MaturityDate *time.Time       `json:"maturity_date,omitempty"`
	Issuer       string           `json:"issuer,omitempty"`
	BondType     string           `json:"bond_type,omitempty"`
	CreditRating string           `json:"credit_rating,omitempty"`

	// ETF / mutual fund
	ExpenseRatio  *decimal.Decimal `json:"expense_ratio,omitempty"`
	Category      string           `json:"category,omitempty"`
	HoldingsCount *int             `json:"holdings_count,omitempty"`

	// Mutual fund
	FundFamily        string           `json:"fund_family,omitempty"`
	MinimumInvestment *decimal.Decimal `json:"minimum_investment,omitempty"`

	// Crypto
	Blockchain     string           `json:"blockchain,omitempty"`
	WalletAddress  string           `json:"wallet_address,omitempty"`
	StakingEnabled *bool            `json:"staking_enabled,omitempty"`
	StakingApy     *decimal.Decimal `json:"staking_apy,omitempty"`

	// Real estate
	PropertyAddress string           `json:"property_address,omitempty"`
	PropertyType    string           `json:"property_type,omitempty"`
	RentalIncome    *decimal.Decimal `json:"rental_income,omitempty"`
	SquareFootage   *int             `json:"square_footage,omitempty"`
	YearBuilt       *int             `json:"year_built,omitempty"`

	// Cash
	Currency     string           `json:"currency,omitempty" binding:"omitempty,iso4217"`
	AccountType  string           `json:"account_type,omitempty"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
	BankName     string           `json:"bank_name,omitempty"`
}

// CreateAssetRequest represents the request payload for creating an asset.
type CreateAssetRequest struct {
	AssetType models.AssetType `json:"asset_type" binding:"required,asset_type"`
	AssetPayload
}

// CreateAsset handles creating a new asset.
// @Summary     Create asset
// @Description Create a new asset of the given type
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} services.EnrichedAsset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req.AssetType, buildAttributes(req.AssetPayload))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// ListAssets handles listing all assets across all types.
// @Summary     List assets
// @Description List all assets of all types, enriched with live prices
// @Tags        assets
// @Produce     json
// @Success     200 {array}  services.EnrichedAsset
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAssetByID handles fetching a single asset by id.
// @Summary     Get asset
// @Description Get a single asset by id
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} services.EnrichedAsset
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAssetByID(c *gin.Context) {
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetAssetsByType handles listing assets of a single type.
// @Summary     List assets by type
// @Description List all assets of one type
// @Tags        assets
// @Produce     json
// @Param       type path string true "Asset type" Enums(STOCK, BOND, ETF, MUTUAL_FUND, CRYPTO, REAL_ESTATE, CASH)
// @Success     200 {array}  services.EnrichedAsset
// @Failure     400 {object} ErrorResponse "Unknown asset type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/type/{type} [get]
func (h *AssetHandler) GetAssetsByType(c *gin.Context) {
	assets, err := h.assetService.GetAssetsByType(c.Request.Context(), models.AssetType(c.Param("type")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// SearchAssets handles searching assets by symbol or name substring.
// @Summary     Search assets
// @Description Search assets by case-insensitive symbol or name substring; an empty query returns all assets
// @Tags        assets
// @Produce     json
// @Param       q query string false "Search query"
// @Success     200 {array}  services.EnrichedAsset
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/search [get]
func (h *AssetHandler) SearchAssets(c *gin.Context) {
	assets, err := h.assetService.SearchAssets(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// UpdateAsset handles replacing an asset's mutable fields.
// @Summary     Update asset
// @Description Overwrite an asset's mutable fields; the asset's type and id never change
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id      path string       true "Asset ID"
// @Param       request body AssetPayload true "Asset details"
// @Success     200 {object} services.EnrichedAsset
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req AssetPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), c.Param("id"), buildAttributes(req))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset handles deleting an asset by id.
// @Summary     Delete asset
// @Description Delete an asset by id
// @Tags        assets
// @Param       id path string true "Asset ID"
// @Success     204 "Asset deleted"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	if err := h.assetService.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPortfolioSummary handles the aggregated portfolio view.
// @Summary     Portfolio summary
// @Description Aggregated portfolio totals, per-type breakdown, and top movers
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} services.PortfolioSummary
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/summary [get]
func (h *AssetHandler) GetPortfolioSummary(c *gin.Context) {
	summary, err := h.assetService.GetPortfolioSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// buildAttributes converts a request payload into the registry's generic
// attribute set. All kind-specific fields are passed through; the registry
// applies whichever ones the asset's type recognizes.
func buildAttributes(p AssetPayload) registry.Attributes {
	extra := map[string]interface{}{}

	setString := func(key, v string) {
		if v != "" {
			extra[key] = v
		}
	}
	setDecimal := func(key string, v *decimal.Decimal) {
		if v != nil {
			extra[key] = *v
		}
	}
	setInt := func(key string, v *int) {
		if v != nil {
			extra[key] = *v
		}
	}

	setString("exchange", p.Exchange)
	setString("sector", p.Sector)
	setDecimal("dividend_yield", p.DividendYield)
	setString("market_cap", p.MarketCap)
	setDecimal("coupon_rate", p.CouponRate)
	if p.MaturityDate != nil {
		extra["maturity_date"] = p.MaturityDate
	}
	setString("issuer", p.Issuer)
	setString("bond_type", p.BondType)
	setString("credit_rating", p.CreditRating)
	setDecimal("expense_ratio", p.ExpenseRatio)
	setString("category", p.Category)
	setInt("holdings_count", p.HoldingsCount)
	setString("fund_family", p.FundFamily)
	setDecimal("minimum_investment", p.MinimumInvestment)
	setString("blockchain", p.Blockchain)
	setString("wallet_address", p.WalletAddress)
	if p.StakingEnabled != nil {
		extra["staking_enabled"] = *p.StakingEnabled
	}
	setDecimal("staking_apy", p.StakingApy)
	setString("property_address", p.PropertyAddress)
	setString("property_type", p.PropertyType)
	setDecimal("rental_income", p.RentalIncome)
	setInt("square_footage", p.SquareFootage)
	setInt("year_built", p.YearBuilt)
	setString("currency", p.Currency)
	setString("account_type", p.AccountType)
	setDecimal("interest_rate", p.InterestRate)
	setString("bank_name", p.BankName)

	return registry.Attributes{
		Symbol:       p.Symbol,
		Name:         p.Name,
		Quantity:     p.Quantity,
		BuyPrice:     p.BuyPrice,
		PurchaseDate: p.PurchaseDate,
		Extra:        extra,
	}
}
