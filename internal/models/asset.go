package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType represents the category of a portfolio asset. The set is closed:
// each type maps to its own table and record struct, dispatched through the
// asset kind registry.
type AssetType string

const (
	AssetTypeStock      AssetType = "STOCK"
	AssetTypeBond       AssetType = "BOND"
	AssetTypeEtf        AssetType = "ETF"
	AssetTypeMutualFund AssetType = "MUTUAL_FUND"
	AssetTypeCrypto     AssetType = "CRYPTO"
	AssetTypeRealEstate AssetType = "REAL_ESTATE"
	AssetTypeCash       AssetType = "CASH"
)

// AssetTypes returns all asset types in canonical display order. This order
// drives the per-type fan-out and the concatenation order of aggregated
// listings.
func AssetTypes() []AssetType {
	return []AssetType{
		AssetTypeStock,
		AssetTypeBond,
		AssetTypeEtf,
		AssetTypeMutualFund,
		AssetTypeCrypto,
		AssetTypeRealEstate,
		AssetTypeCash,
	}
}

// Valid reports whether t is one of the recognized asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeStock, AssetTypeBond, AssetTypeEtf, AssetTypeMutualFund,
		AssetTypeCrypto, AssetTypeRealEstate, AssetTypeCash:
		return true
	}
	return false
}

// AssetCommon holds the fields shared by every asset kind. Monetary fields
// use arbitrary-precision decimals; binary floats are never used for money.
type AssetCommon struct {
	Base
	Symbol       string          `gorm:"size:20;not null;index" json:"symbol"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Quantity     decimal.Decimal `gorm:"type:numeric(19,4);not null" json:"quantity"`
	BuyPrice     decimal.Decimal `gorm:"type:numeric(19,2);not null" json:"buy_price"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
}

// CostBasis returns Quantity x BuyPrice with exact decimal arithmetic.
// When either factor is unset the result is exactly zero.
func (c *AssetCommon) CostBasis() decimal.Decimal {
	return c.Quantity.Mul(c.BuyPrice)
}

// AssetRecord is the interface implemented by every asset kind struct.
// The aggregation engine treats records only through this interface; the
// kind-specific attribute sets are opaque to it.
type AssetRecord interface {
	Common() *AssetCommon
	Type() AssetType
}
