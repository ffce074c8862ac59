package models

import "github.com/shopspring/decimal"

// MutualFund represents a mutual fund holding.
type MutualFund struct {
	AssetCommon
	FundFamily        string          `gorm:"size:50" json:"fund_family,omitempty"` // Vanguard, Fidelity, etc.
	ExpenseRatio      decimal.Decimal `gorm:"type:numeric(6,4)" json:"expense_ratio"`
	Category          string          `gorm:"size:50" json:"category,omitempty"` // Growth, Value, Blend, etc.
	MinimumInvestment decimal.Decimal `gorm:"type:numeric(19,2)" json:"minimum_investment"`
	DividendYield     decimal.Decimal `gorm:"type:numeric(5,2)" json:"dividend_yield"`
}

// Common returns the shared asset fields.
func (m *MutualFund) Common() *AssetCommon { return &m.AssetCommon }

// Type returns the asset type tag.
func (*MutualFund) Type() AssetType { return AssetTypeMutualFund }

// TableName sets the mutual_funds table name.
func (*MutualFund) TableName() string { return "mutual_funds" }
