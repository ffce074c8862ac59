package services

import (
	"context"
	"time"

	"assetfolio/internal/models"
	"assetfolio/internal/registry"

	"github.com/shopspring/decimal"
)

// EnrichedAsset is an asset record decorated with its live price and
// derived metrics. Computed fresh per request; never persisted.
type EnrichedAsset struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Type         models.AssetType `json:"type"`
	Quantity     decimal.Decimal  `json:"quantity"`
	BuyPrice     decimal.Decimal  `json:"buy_price"`
	PurchaseDate *time.Time       `json:"purchase_date,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	CurrentPrice decimal.Decimal `json:"current_price"`
	CurrentValue decimal.Decimal `json:"current_value"`
	CostBasis    decimal.Decimal `json:"cost_basis"`
	GainLoss     decimal.Decimal `json:"gain_loss"`
	GainLossPct  decimal.Decimal `json:"gain_loss_pct"`

	// Details carries the full kind-specific record, passed through
	// unexamined by the aggregation engine.
	Details models.AssetRecord `json:"details,omitempty"`
}

// TypeBreakdown contains summary data for a single asset type.
type TypeBreakdown struct {
	Count      int             `json:"count"`
	Value      decimal.Decimal `json:"value"`
	Allocation decimal.Decimal `json:"allocation"` // value share of total, in %
}

// PortfolioSummary contains aggregated portfolio data across all asset
// types.
type PortfolioSummary struct {
	TotalValue       decimal.Decimal                    `json:"total_value"`
	TotalCostBasis   decimal.Decimal                    `json:"total_cost_basis"`
	TotalGainLoss    decimal.Decimal                    `json:"total_gain_loss"`
	TotalGainLossPct decimal.Decimal                    `json:"total_gain_loss_pct"`
	TotalAssets      int                                `json:"total_assets"`
	ByType           map[models.AssetType]TypeBreakdown `json:"by_type"`
	Assets           []EnrichedAsset                    `json:"assets"`
	TopGainers       []EnrichedAsset                    `json:"top_gainers"`
	TopLosers        []EnrichedAsset                    `json:"top_losers"`
}

// PriceServicer is the quote-cache contract consumed by the aggregation
// engine. An absent price (false) means "fall back to another source",
// never a hard failure.
type PriceServicer interface {
	CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, bool)
	CurrentPrices(ctx context.Context, symbols []string) map[string]decimal.Decimal
	IsValidSymbol(ctx context.Context, symbol string) bool
}

// AssetServicer defines the contract for asset aggregation business logic.
type AssetServicer interface {
	ListAssets(ctx context.Context) ([]EnrichedAsset, error)
	GetAssetByID(ctx context.Context, id string) (*EnrichedAsset, error)
	GetAssetsByType(ctx context.Context, assetType models.AssetType) ([]EnrichedAsset, error)
	SearchAssets(ctx context.Context, query string) ([]EnrichedAsset, error)
	CreateAsset(ctx context.Context, assetType models.AssetType, attrs registry.Attributes) (*EnrichedAsset, error)
	UpdateAsset(ctx context.Context, id string, attrs registry.Attributes) (*EnrichedAsset, error)
	DeleteAsset(ctx context.Context, id string) error
	GetPortfolioSummary(ctx context.Context) (*PortfolioSummary, error)
}
