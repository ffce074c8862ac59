package models

import "github.com/shopspring/decimal"

// Crypto represents a cryptocurrency holding.
type Crypto struct {
	AssetCommon
	Blockchain     string          `gorm:"size:30" json:"blockchain,omitempty"` // Bitcoin, Ethereum, Solana, etc.
	WalletAddress  string          `gorm:"size:100" json:"wallet_address,omitempty"`
	StakingEnabled bool            `json:"staking_enabled"`
	StakingApy     decimal.Decimal `gorm:"type:numeric(5,2)" json:"staking_apy"` // Annual staking yield %
}

// Common returns the shared asset fields.
func (c *Crypto) Common() *AssetCommon { return &c.AssetCommon }

// Type returns the asset type tag.
func (*Crypto) Type() AssetType { return AssetTypeCrypto }

// TableName sets the cryptos table name.
func (*Crypto) TableName() string { return "cryptos" }
