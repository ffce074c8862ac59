package models

import "github.com/shopspring/decimal"

// Stock represents a stock/equity holding.
type Stock struct {
	AssetCommon
	Exchange      string          `gorm:"size:20" json:"exchange,omitempty"`
	Sector        string          `gorm:"size:50" json:"sector,omitempty"`
	DividendYield decimal.Decimal `gorm:"type:numeric(5,2)" json:"dividend_yield"`
	MarketCap     string          `gorm:"size:20" json:"market_cap,omitempty"` // Large, Mid, Small
}

// Common returns the shared asset fields.
func (s *Stock) Common() *AssetCommon { return &s.AssetCommon }

// Type returns the asset type tag.
func (*Stock) Type() AssetType { return AssetTypeStock }

// TableName sets the stocks table name.
func (*Stock) TableName() string { return "stocks" }
