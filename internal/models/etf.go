package models

import "github.com/shopspring/decimal"

// Etf represents an exchange-traded fund holding.
type Etf struct {
	AssetCommon
	Exchange      string          `gorm:"size:20" json:"exchange,omitempty"`
	ExpenseRatio  decimal.Decimal `gorm:"type:numeric(6,4)" json:"expense_ratio"` // e.g. 0.0003 for 0.03%
	Category      string          `gorm:"size:50" json:"category,omitempty"`      // Index, Sector, Bond, Commodity, etc.
	HoldingsCount int             `json:"holdings_count,omitempty"`
	DividendYield decimal.Decimal `gorm:"type:numeric(5,2)" json:"dividend_yield"`
}

// Common returns the shared asset fields.
func (e *Etf) Common() *AssetCommon { return &e.AssetCommon }

// Type returns the asset type tag.
func (*Etf) Type() AssetType { return AssetTypeEtf }

// TableName sets the etfs table name.
func (*Etf) TableName() string { return "etfs" }
