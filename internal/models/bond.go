package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BondType represents the issuer category of a bond.
type BondType string

const (
	BondTypeGovernment BondType = "GOVERNMENT"
	BondTypeCorporate  BondType = "CORPORATE"
	BondTypeMunicipal  BondType = "MUNICIPAL"
	BondTypeTreasury   BondType = "TREASURY"
	BondTypeAgency     BondType = "AGENCY"
)

// Bond represents a bond holding.
type Bond struct {
	AssetCommon
	CouponRate   decimal.Decimal `gorm:"type:numeric(5,2)" json:"coupon_rate"` // Annual coupon rate %
	MaturityDate *time.Time      `json:"maturity_date,omitempty"`
	Issuer       string          `gorm:"size:100" json:"issuer,omitempty"` // Government, corporate name, etc.
	BondType     BondType        `gorm:"size:30" json:"bond_type,omitempty"`
	CreditRating string          `gorm:"size:10" json:"credit_rating,omitempty"` // AAA, AA, A, BBB, etc.
}

// Common returns the shared asset fields.
func (b *Bond) Common() *AssetCommon { return &b.AssetCommon }

// Type returns the asset type tag.
func (*Bond) Type() AssetType { return AssetTypeBond }

// TableName sets the bonds table name.
func (*Bond) TableName() string { return "bonds" }
